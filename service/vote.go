// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/store"
)

type VoteService struct {
	store  store.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewVoteService(s store.Store, c clock.Clock, logger *slog.Logger) *VoteService {
	return &VoteService{store: s, clock: c, logger: resolveLogger(logger)}
}

// CastVote adds one vote to a choice whose poll is still open.
// The count is bumped by the store's atomic increment.
func (s *VoteService) CastVote(ctx context.Context, choiceID string) error {
	choice, err := s.store.FindChoice(ctx, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("vote rejected", "choice_id", choiceID, "reason", "choice not found")
		return ErrChoiceNotFound
	}
	if err != nil {
		s.logger.Error("failed to query choice", "choice_id", choiceID, "error", err)
		return internal("cast vote", err)
	}

	poll, err := s.store.FindPoll(ctx, choice.PollID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("vote rejected", "choice_id", choiceID, "poll_id", choice.PollID, "reason", "orphaned choice")
		return ErrPollNotFound
	}
	if err != nil {
		s.logger.Error("failed to query poll", "poll_id", choice.PollID, "error", err)
		return internal("cast vote", err)
	}

	if !poll.IsOpen(s.clock.Now()) {
		s.logger.Warn("vote rejected", "choice_id", choiceID, "poll_id", poll.ID, "reason", "poll closed")
		return ErrPollClosed
	}

	updated, err := s.store.IncrementVotes(ctx, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrChoiceNotFound
	}
	if err != nil {
		s.logger.Error("failed to increment votes", "choice_id", choiceID, "error", err)
		return internal("cast vote", err)
	}

	s.logger.Info("vote cast", "poll_id", poll.ID, "choice_id", choiceID, "vote_count", updated.VoteCount)
	return nil
}
