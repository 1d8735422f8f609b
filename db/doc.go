// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQL schema creation for the PostgreSQL and SQLite backends.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: title and minute-resolution expire_at
  - choice: title (globally unique), owning poll_id, votes counter

# Relationships

	poll 1──* choice

choice.poll_id is not a foreign key. The service checks that the
poll exists before inserting a choice.

# Indexes

  - choice.title (unique)
  - choice.poll_id
*/
package db
