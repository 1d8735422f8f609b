// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service holds the poll lifecycle and vote-counting rules.

# Services

Each service is built from a store.Store, a clock.Clock and an optional logger:

	polls := service.NewPollService(s, clock.System{}, logger)
	choices := service.NewChoiceService(s, clock.System{}, logger)
	votes := service.NewVoteService(s, clock.System{}, logger)
	results := service.NewResultAggregator(s, logger)

# Open and Closed

A poll is open while the current minute is before its expireAt. Nothing
is stored for this; AddChoice and CastVote read the clock on every call.

# Rules

  - AddChoice: poll must exist, then the title must be unused by any choice
    in any poll, then the poll must be open.
  - ListChoicesForPoll: a missing poll and a poll with no choices are both
    NotFound (ErrPollNotFound, ErrNoChoices).
  - CastVote: choice must exist, its poll must exist and be open. The count
    is changed only through Store.IncrementVotes.
  - GetResult: poll must exist; an empty choice list is a valid result.

# Errors

	NotFound   ErrPollNotFound, ErrChoiceNotFound, ErrNoChoices
	Conflict   ErrChoiceTitleTaken
	Forbidden  ErrPollClosed
	Internal   ErrInternal (wraps the store error)
*/
package service
