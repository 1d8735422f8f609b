// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler wraps one service from package service:

  - PollHandler: create and list polls
  - ChoiceHandler: add choices, list a poll's choices
  - VoteHandler: cast a vote on a choice
  - ResultsHandler: poll with all choices and counts

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(service.NewPollService(s, clk, logger))

# Request Flow

Every handler decodes the request, validates its shape with package
validation, then calls exactly one service method:

	POST /poll              → CreatePoll
	GET  /poll              → ListPolls
	POST /choice            → AddChoice
	GET  /poll/{id}/choice  → ListChoices
	POST /choice/{id}/vote  → CastVote
	GET  /poll/{id}/result  → GetResult

# Status Codes

	201  poll, choice or vote created
	403  poll closed
	404  poll or choice missing, or poll has no choices (list only)
	409  choice title already used by any poll
	422  malformed JSON or missing/invalid fields
	500  store failure
*/
package handlers
