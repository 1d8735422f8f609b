// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"errors"
	"fmt"
)

var (
	// NotFound
	ErrPollNotFound   = errors.New("poll not found")
	ErrChoiceNotFound = errors.New("choice not found")
	ErrNoChoices      = errors.New("poll has no choices")

	// Conflict
	ErrChoiceTitleTaken = errors.New("choice title already in use")

	// Forbidden
	ErrPollClosed = errors.New("poll is closed")

	// ErrInternal wraps every store or infrastructure failure.
	ErrInternal = errors.New("internal error")
)

// IsNotFound reports whether err means a referenced poll or choice is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPollNotFound) ||
		errors.Is(err, ErrChoiceNotFound) ||
		errors.Is(err, ErrNoChoices)
}

func internal(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}
