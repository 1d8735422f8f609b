// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/service"
)

type ResultsHandler struct {
	results *service.ResultAggregator
}

func NewResultsHandler(results *service.ResultAggregator) *ResultsHandler {
	return &ResultsHandler{results: results}
}

// GetResult handles GET /poll/{id}/result
// Results are public and available before and after expiry
func (h *ResultsHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "poll id is required")
		return
	}

	result, err := h.results.GetResult(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
