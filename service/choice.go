// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type ChoiceService struct {
	store  store.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewChoiceService(s store.Store, c clock.Clock, logger *slog.Logger) *ChoiceService {
	return &ChoiceService{store: s, clock: c, logger: resolveLogger(logger)}
}

// AddChoice attaches a choice with zero votes to an open poll.
//
// Checks run in a fixed order: the poll must exist, then the title must be
// unused by any choice of any poll, then the poll must still be open.
func (s *ChoiceService) AddChoice(ctx context.Context, pollID, title string) (models.Choice, error) {
	poll, err := s.store.FindPoll(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("choice rejected", "poll_id", pollID, "reason", "poll not found")
		return models.Choice{}, ErrPollNotFound
	}
	if err != nil {
		s.logger.Error("failed to query poll", "poll_id", pollID, "error", err)
		return models.Choice{}, internal("add choice", err)
	}

	existing, err := s.store.FindChoiceByTitle(ctx, title)
	switch {
	case err == nil:
		s.logger.Warn("choice rejected", "poll_id", pollID, "reason", "title taken", "existing_choice_id", existing.ID)
		return models.Choice{}, ErrChoiceTitleTaken
	case !errors.Is(err, store.ErrNotFound):
		s.logger.Error("failed to query choice", "title", title, "error", err)
		return models.Choice{}, internal("add choice", err)
	}

	if !poll.IsOpen(s.clock.Now()) {
		s.logger.Warn("choice rejected", "poll_id", pollID, "reason", "poll closed", "expire_at", poll.ExpireAt)
		return models.Choice{}, ErrPollClosed
	}

	choice, err := s.store.InsertChoice(ctx, models.Choice{PollID: poll.ID, Title: title, VoteCount: 0})
	if errors.Is(err, store.ErrDuplicate) {
		// Lost a race with a concurrent insert of the same title
		s.logger.Warn("choice rejected", "poll_id", pollID, "reason", "title taken")
		return models.Choice{}, ErrChoiceTitleTaken
	}
	if err != nil {
		s.logger.Error("failed to insert choice", "poll_id", pollID, "error", err)
		return models.Choice{}, internal("add choice", err)
	}

	s.logger.Info("choice added", "poll_id", poll.ID, "choice_id", choice.ID)
	return choice, nil
}

// ListChoicesForPoll returns the poll's choices. Both a missing poll
// (ErrPollNotFound) and a poll without choices (ErrNoChoices) are NotFound.
func (s *ChoiceService) ListChoicesForPoll(ctx context.Context, pollID string) ([]models.Choice, error) {
	poll, err := s.store.FindPoll(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPollNotFound
	}
	if err != nil {
		s.logger.Error("failed to query poll", "poll_id", pollID, "error", err)
		return nil, internal("list choices", err)
	}

	choices, err := s.store.ListChoicesByPoll(ctx, poll.ID)
	if err != nil {
		s.logger.Error("failed to query choices", "poll_id", pollID, "error", err)
		return nil, internal("list choices", err)
	}
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	return choices, nil
}
