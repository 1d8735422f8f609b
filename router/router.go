// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/service"
	"github.com/danielhkuo/quickly-vote/store"
)

func NewRouter(s store.Store, clk clock.Clock, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(service.NewPollService(s, clk, logger))
	choiceHandler := handlers.NewChoiceHandler(service.NewChoiceService(s, clk, logger))
	voteHandler := handlers.NewVoteHandler(service.NewVoteService(s, clk, logger))
	resultsHandler := handlers.NewResultsHandler(service.NewResultAggregator(s, logger))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("POST /poll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.ListPolls))

	// Choices
	mux.HandleFunc("POST /choice", middleware.WithLogging(choiceHandler.AddChoice))
	mux.HandleFunc("GET /poll/{id}/choice", middleware.WithLogging(choiceHandler.ListChoices))

	// Voting
	mux.HandleFunc("POST /choice/{id}/vote", middleware.WithLogging(voteHandler.CastVote))

	// Results (public, readable after expiry)
	mux.HandleFunc("GET /poll/{id}/result", middleware.WithLogging(resultsHandler.GetResult))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
