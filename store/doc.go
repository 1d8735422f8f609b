// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence contract for polls and choices.

# Backends

  - memory: in-process maps guarded by a mutex (tests, local dev)
  - mongostore: MongoDB collections "poll" and "choice"
  - sqlstore: PostgreSQL or SQLite tables "poll" and "choice"

The handle is opened once at startup and closed at shutdown:

	s, err := mongostore.Open(ctx, uri, dbName, timeout)
	defer s.Close(ctx)

# Invariants

Choice titles are unique across all polls. Every backend enforces this
itself (unique index, UNIQUE constraint, or a check under lock) and
reports a clash as ErrDuplicate.

IncrementVotes is one indivisible backend operation ($inc, UPDATE ...
SET votes = votes + 1, or an increment under lock). It never reads the
count, adds one, and writes it back.

# Caching

WithPollCache puts an LRU in front of FindPoll. Misses are not cached,
so a poll created through another process is still found.
*/
package store
