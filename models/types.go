// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreatePollRequest struct {
	Title    string `json:"title" validate:"required"`
	ExpireAt string `json:"expireAt" validate:"omitempty,timestamp"`
}

type CreateChoiceRequest struct {
	Title  string `json:"title" validate:"required"`
	PollID string `json:"pollId" validate:"required"`
}

// Response types

type CastVoteResponse struct {
	ChoiceID string `json:"choiceId"`
	Message  string `json:"message"`
}

// Domain types

// Poll is open while the current minute is before ExpireAt.
// It has no stored status.
type Poll struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ExpireAt string `json:"expireAt"`
}

type Choice struct {
	ID        string `json:"id"`
	PollID    string `json:"pollId"`
	Title     string `json:"title"`
	VoteCount int64  `json:"voteCount"`
}

// Result joins a poll with its choices. Choices is never nil.
type Result struct {
	Poll    Poll     `json:"poll"`
	Choices []Choice `json:"choices"`
}

// Error response

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}
