// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package sqlstore keeps polls and choices in PostgreSQL (lib/pq) or SQLite
// (modernc.org/sqlite) through database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// Driver names registered by the imported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// Open connects with the given driver, verifies the connection and creates
// the schema. timeout bounds each statement; zero means no bound.
func Open(ctx context.Context, driver, dsn string, timeout time.Duration) (*Store, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite allows one writer, and each :memory: connection is its own database
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	s := &Store{db: conn, timeout: timeout}

	pingCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(pingCtx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) InsertPoll(ctx context.Context, poll models.Poll) (models.Poll, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	poll.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll (id, title, expire_at, created_at)
		VALUES ($1, $2, $3, $4)
	`, poll.ID, poll.Title, poll.ExpireAt, time.Now().UnixNano())
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}
	return poll, nil
}

func (s *Store) FindPoll(ctx context.Context, id string) (models.Poll, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, expire_at FROM poll WHERE id = $1
	`, id).Scan(&poll.ID, &poll.Title, &poll.ExpireAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, store.ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	return poll, nil
}

func (s *Store) ListPolls(ctx context.Context) ([]models.Poll, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, expire_at FROM poll ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.ExpireAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}
	return polls, nil
}

func (s *Store) InsertChoice(ctx context.Context, choice models.Choice) (models.Choice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	choice.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO choice (id, poll_id, title, votes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, choice.ID, choice.PollID, choice.Title, choice.VoteCount, time.Now().UnixNano())
	if err != nil {
		if isUniqueViolation(err) {
			return models.Choice{}, store.ErrDuplicate
		}
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}
	return choice, nil
}

func (s *Store) FindChoice(ctx context.Context, id string) (models.Choice, error) {
	return s.findChoice(ctx, `
		SELECT id, poll_id, title, votes FROM choice WHERE id = $1
	`, id)
}

func (s *Store) FindChoiceByTitle(ctx context.Context, title string) (models.Choice, error) {
	return s.findChoice(ctx, `
		SELECT id, poll_id, title, votes FROM choice WHERE title = $1
	`, title)
}

func (s *Store) findChoice(ctx context.Context, query string, arg string) (models.Choice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var c models.Choice
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.PollID, &c.Title, &c.VoteCount)
	if err == sql.ErrNoRows {
		return models.Choice{}, store.ErrNotFound
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to query choice: %w", err)
	}
	return c, nil
}

func (s *Store) ListChoicesByPoll(ctx context.Context, pollID string) ([]models.Choice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, title, votes
		FROM choice
		WHERE poll_id = $1
		ORDER BY created_at, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Title, &c.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}
	return choices, nil
}

// IncrementVotes is a single UPDATE ... RETURNING statement.
func (s *Store) IncrementVotes(ctx context.Context, choiceID string) (models.Choice, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var c models.Choice
	err := s.db.QueryRowContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1
		RETURNING id, poll_id, title, votes
	`, choiceID).Scan(&c.ID, &c.PollID, &c.Title, &c.VoteCount)
	if err == sql.ErrNoRows {
		return models.Choice{}, store.ErrNotFound
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to increment votes: %w", err)
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}
