// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danielhkuo/quickly-vote/models"
)

// PollCache serves FindPoll from an LRU in front of another Store.
// Polls never change after creation, so entries need no expiry.
type PollCache struct {
	Store
	polls *lru.Cache[string, models.Poll]
}

// WithPollCache wraps s with a poll cache of the given size.
// A size of zero or less returns s unchanged.
func WithPollCache(s Store, size int) (Store, error) {
	if size <= 0 {
		return s, nil
	}
	l, err := lru.New[string, models.Poll](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll cache: %w", err)
	}
	return &PollCache{Store: s, polls: l}, nil
}

func (c *PollCache) InsertPoll(ctx context.Context, poll models.Poll) (models.Poll, error) {
	created, err := c.Store.InsertPoll(ctx, poll)
	if err != nil {
		return models.Poll{}, err
	}
	c.polls.Add(created.ID, created)
	return created, nil
}

func (c *PollCache) FindPoll(ctx context.Context, id string) (models.Poll, error) {
	if poll, ok := c.polls.Get(id); ok {
		return poll, nil
	}
	poll, err := c.Store.FindPoll(ctx, id)
	if err != nil {
		return models.Poll{}, err
	}
	c.polls.Add(id, poll)
	return poll, nil
}

// Len reports the number of cached polls.
func (c *PollCache) Len() int {
	return c.polls.Len()
}
