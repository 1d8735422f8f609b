// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/service"
)

// writeServiceError maps a service error onto a status code
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, service.ErrChoiceNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Choice not found")
	case errors.Is(err, service.ErrNoChoices):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll has no choices")
	case errors.Is(err, service.ErrChoiceTitleTaken):
		middleware.ErrorResponse(w, http.StatusConflict, "Choice title already in use")
	case errors.Is(err, service.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusForbidden, "Poll is closed")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
