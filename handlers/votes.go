// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/service"
)

type VoteHandler struct {
	votes *service.VoteService
}

func NewVoteHandler(votes *service.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// CastVote handles POST /choice/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	choiceID := r.PathValue("id")
	if choiceID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "choice id is required")
		return
	}

	if err := h.votes.CastVote(r.Context(), choiceID); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ChoiceID: choiceID,
		Message:  "Vote accepted",
	})
}
