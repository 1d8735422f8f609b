// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/service"
	"github.com/danielhkuo/quickly-vote/validation"
)

type ChoiceHandler struct {
	choices *service.ChoiceService
}

func NewChoiceHandler(choices *service.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{choices: choices}
}

// AddChoice handles POST /choice
func (h *ChoiceHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Invalid JSON")
		return
	}

	if res := validation.CreateChoice(req); !res.Valid {
		middleware.ValidationErrorResponse(w, res.Summary(), res.Errors)
		return
	}

	choice, err := h.choices.AddChoice(r.Context(), req.PollID, req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, choice)
}

// ListChoices handles GET /poll/{id}/choice
func (h *ChoiceHandler) ListChoices(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "poll id is required")
		return
	}

	choices, err := h.choices.ListChoicesForPoll(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, choices)
}
