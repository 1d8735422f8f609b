// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags and environment.

# Usage

	if err := cliparse.LoadEnvFiles(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnvFiles reads .env into the environment first; variables already set
in the environment win.

# Priority

Configuration is resolved in order:

 1. CLI flags (highest priority)
 2. Environment variables (including .env)
 3. Default values

# Flags

	-p             Server port (env: PORT, default: 5000)
	-d             Database URL (env: DATABASE_URL, then MONGO_URI)
	-t             Store type (env: DATABASE_TYPE, default: mongo)
	-db-name       Mongo database name (env: DATABASE, default: quickly_vote)
	-store-timeout Store connect and call timeout (env: STORE_TIMEOUT, default: 5s)
	-poll-cache    Poll cache entries, 0 disables (env: POLL_CACHE_SIZE, default: 512)
	-log-level     debug, info, warn or error (env: LOG_LEVEL, default: info)

# Store Types

  - mongo: MongoDB, DATABASE_URL is a mongodb:// URI
  - postgres: PostgreSQL via lib/pq
  - sqlite: SQLite file via modernc.org/sqlite
  - memory: in-process, no URL needed, data lost on exit

# Example

	DATABASE_TYPE=sqlite DATABASE_URL=file:votes.db ./quickly-vote -p 8080
*/
package cliparse
