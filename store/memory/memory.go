// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package memory is an in-process Store. Insertion order is preserved for
// listings, matching the natural order of the persistent backends.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type Store struct {
	mu sync.RWMutex

	polls     map[string]models.Poll
	pollOrder []string

	choices     map[string]*models.Choice
	choiceOrder []string
	titles      map[string]string // title -> choice ID
}

func New() *Store {
	return &Store{
		polls:   make(map[string]models.Poll),
		choices: make(map[string]*models.Choice),
		titles:  make(map[string]string),
	}
}

func (s *Store) InsertPoll(_ context.Context, poll models.Poll) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll.ID = uuid.NewString()
	s.polls[poll.ID] = poll
	s.pollOrder = append(s.pollOrder, poll.ID)
	return poll, nil
}

func (s *Store) FindPoll(_ context.Context, id string) (models.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, ok := s.polls[id]
	if !ok {
		return models.Poll{}, store.ErrNotFound
	}
	return poll, nil
}

func (s *Store) ListPolls(_ context.Context) ([]models.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	polls := make([]models.Poll, 0, len(s.pollOrder))
	for _, id := range s.pollOrder {
		polls = append(polls, s.polls[id])
	}
	return polls, nil
}

func (s *Store) InsertChoice(_ context.Context, choice models.Choice) (models.Choice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.titles[choice.Title]; taken {
		return models.Choice{}, store.ErrDuplicate
	}

	choice.ID = uuid.NewString()
	stored := choice
	s.choices[choice.ID] = &stored
	s.choiceOrder = append(s.choiceOrder, choice.ID)
	s.titles[choice.Title] = choice.ID
	return choice, nil
}

func (s *Store) FindChoice(_ context.Context, id string) (models.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	choice, ok := s.choices[id]
	if !ok {
		return models.Choice{}, store.ErrNotFound
	}
	return *choice, nil
}

func (s *Store) FindChoiceByTitle(_ context.Context, title string) (models.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.titles[title]
	if !ok {
		return models.Choice{}, store.ErrNotFound
	}
	return *s.choices[id], nil
}

func (s *Store) ListChoicesByPoll(_ context.Context, pollID string) ([]models.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	choices := []models.Choice{}
	for _, id := range s.choiceOrder {
		if c := s.choices[id]; c.PollID == pollID {
			choices = append(choices, *c)
		}
	}
	return choices, nil
}

func (s *Store) IncrementVotes(_ context.Context, choiceID string) (models.Choice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	choice, ok := s.choices[choiceID]
	if !ok {
		return models.Choice{}, store.ErrNotFound
	}
	choice.VoteCount++
	return *choice, nil
}

// Close is a no-op; it lets the memory store stand in for the persistent ones.
func (s *Store) Close(context.Context) error {
	return nil
}
