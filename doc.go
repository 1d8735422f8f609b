// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote is a small polling service: anyone can create a poll with an
expiry, add uniquely titled choices while it is open, vote on choices as
often as they like until it closes, and read the tally at any time.

# Starting the Server

By default the server talks to MongoDB:

	MONGO_URI=mongodb://localhost:27017 DATABASE=quickly_vote go run .

Other stores are picked with -t:

	go run . -t postgres -d "postgres://..."
	go run . -t sqlite -d "file:votes.db"
	go run . -t memory

A .env file in the working directory is loaded before flags are parsed.
Variables already set in the environment win.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL or MONGO_URI (-d): connection string, unused for memory
  - DATABASE_TYPE (-t): mongo, postgres, sqlite or memory (default: mongo)
  - DATABASE (-db-name): Mongo database name (default: quickly_vote)
  - STORE_TIMEOUT (-store-timeout): per-call store deadline (default: 5s)
  - POLL_CACHE_SIZE (-poll-cache): LRU entries, 0 disables (default: 512)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

  - handlers: HTTP request handlers (polls, choices, votes, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - service: Poll lifecycle, expiry gating and vote counting
  - store: Storage contract with memory, mongostore and sqlstore backends
  - validation: Request shape checks
  - models: Domain and request/response types
  - clock: Injectable time source
  - db: SQL schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
