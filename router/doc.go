// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s, clock.System{}, logger)

The caller wraps the mux with middleware.CORS before serving it.

# Endpoints

Health:

	GET /health

Polls:

	POST /poll - Create poll (expireAt defaults to 30 days out)
	GET  /poll - List all polls

Choices:

	POST /choice            - Add choice to an open poll
	GET  /poll/{id}/choice  - List a poll's choices

Voting:

	POST /choice/{id}/vote - Add one vote to a choice

Results (public, also after expiry):

	GET /poll/{id}/result - Poll with every choice and its count

# Handler Initialization

Each handler is built around one service sharing the same store and clock:

	pollHandler := handlers.NewPollHandler(service.NewPollService(s, clk, logger))
	voteHandler := handlers.NewVoteHandler(service.NewVoteService(s, clk, logger))
*/
package router
