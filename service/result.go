// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// ResultAggregator joins a poll with its choices. Results are readable
// whether or not the poll is still open.
type ResultAggregator struct {
	store  store.Store
	logger *slog.Logger
}

func NewResultAggregator(s store.Store, logger *slog.Logger) *ResultAggregator {
	return &ResultAggregator{store: s, logger: resolveLogger(logger)}
}

func (a *ResultAggregator) GetResult(ctx context.Context, pollID string) (models.Result, error) {
	poll, err := a.store.FindPoll(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Result{}, ErrPollNotFound
	}
	if err != nil {
		a.logger.Error("failed to query poll", "poll_id", pollID, "error", err)
		return models.Result{}, internal("get result", err)
	}

	choices, err := a.store.ListChoicesByPoll(ctx, poll.ID)
	if err != nil {
		a.logger.Error("failed to query choices", "poll_id", pollID, "error", err)
		return models.Result{}, internal("get result", err)
	}
	if choices == nil {
		choices = []models.Choice{}
	}

	return models.Result{Poll: poll, Choices: choices}, nil
}
