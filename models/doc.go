// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, expireAt (optional)
  - CreateChoiceRequest: title, pollId

Validation rules live in struct tags and are applied by package validation.

# Response Types

  - CastVoteResponse: choiceId, message
  - ErrorResponse: error, message, fields

# Domain Types

  - Poll: a titled question with a voting deadline
  - Choice: an option belonging to one poll, carrying its vote tally
  - Result: a poll joined with all of its choices

# Timestamps

Poll.ExpireAt is a minute-resolution string:

	2025-06-01 18:30

A poll is open while the current minute is strictly before ExpireAt:

	if !poll.IsOpen(clock.Now()) {
		// closed
	}

Polls created without expireAt get DefaultExpireAt(now), 30 calendar days out.
*/
package models
