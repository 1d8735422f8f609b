// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/quickly-vote/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Store persists polls and choices.
//
// Lookups by an identifier the backend cannot parse report ErrNotFound.
// InsertChoice reports ErrDuplicate when another choice already has the same
// title. IncrementVotes must be a single atomic operation in the backend.
type Store interface {
	InsertPoll(ctx context.Context, poll models.Poll) (models.Poll, error)
	FindPoll(ctx context.Context, id string) (models.Poll, error)
	ListPolls(ctx context.Context) ([]models.Poll, error)

	InsertChoice(ctx context.Context, choice models.Choice) (models.Choice, error)
	FindChoice(ctx context.Context, id string) (models.Choice, error)
	FindChoiceByTitle(ctx context.Context, title string) (models.Choice, error)
	ListChoicesByPoll(ctx context.Context, pollID string) ([]models.Choice, error)

	// IncrementVotes adds one vote and returns the choice as it is afterwards.
	IncrementVotes(ctx context.Context, choiceID string) (models.Choice, error)
}
