// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type PollService struct {
	store  store.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewPollService(s store.Store, c clock.Clock, logger *slog.Logger) *PollService {
	return &PollService{store: s, clock: c, logger: resolveLogger(logger)}
}

// CreatePoll persists a new poll. An empty expireAt defaults to 30 days from
// now at minute resolution. title and expireAt are validated by the caller.
func (s *PollService) CreatePoll(ctx context.Context, title, expireAt string) (models.Poll, error) {
	now := s.clock.Now()
	if expireAt == "" {
		expireAt = models.DefaultExpireAt(now)
	}

	poll, err := s.store.InsertPoll(ctx, models.Poll{Title: title, ExpireAt: expireAt})
	if err != nil {
		s.logger.Error("failed to insert poll", "error", err)
		return models.Poll{}, internal("create poll", err)
	}

	attrs := []any{"poll_id", poll.ID, "expire_at", poll.ExpireAt}
	if t, err := models.ParseTimestamp(poll.ExpireAt, now.Location()); err == nil {
		attrs = append(attrs, "closes", humanize.RelTime(t, now, "ago", "from now"))
	}
	s.logger.Info("poll created", attrs...)

	return poll, nil
}

// ListPolls returns every poll in the store's natural order.
func (s *PollService) ListPolls(ctx context.Context) ([]models.Poll, error) {
	polls, err := s.store.ListPolls(ctx)
	if err != nil {
		s.logger.Error("failed to list polls", "error", err)
		return nil, internal("list polls", err)
	}
	return polls, nil
}
