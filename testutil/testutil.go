// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store/memory"
)

// TestNow is the instant every test clock starts at
var TestNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

// Open and closed expiries relative to TestNow
const (
	OpenExpireAt   = "2025-04-01 12:00"
	ClosedExpireAt = "2025-03-01 12:00"
)

// NewTestStore returns an empty in-memory store
func NewTestStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New()
}

// NewTestClock returns a fake clock set to TestNow
func NewTestClock() *clock.Fake {
	return clock.NewFake(TestNow)
}

// NewTestLogger discards output unless the test runs with -v
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	if !testing.Verbose() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.Default()
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  cliparse.StoreMemory,
		DatabaseName:  "quickly_vote_test",
		StoreTimeout:  time.Second,
		PollCacheSize: 0,
		LogLevel:      slog.LevelInfo,
	}
}

// CreateTestPoll stores a poll directly, bypassing the service.
// Use OpenExpireAt or ClosedExpireAt for expireAt.
func CreateTestPoll(t *testing.T, s *memory.Store, title, expireAt string) models.Poll {
	t.Helper()

	poll, err := s.InsertPoll(context.Background(), models.Poll{Title: title, ExpireAt: expireAt})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// AddTestChoice stores a choice directly, bypassing expiry and poll checks
func AddTestChoice(t *testing.T, s *memory.Store, pollID, title string) models.Choice {
	t.Helper()

	choice, err := s.InsertChoice(context.Background(), models.Choice{PollID: pollID, Title: title})
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return choice
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
