// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestCreatePoll(t *testing.T) {
	env := setupHandlers(t)

	tests := []struct {
		name         string
		request      models.CreatePollRequest
		wantStatus   int
		wantExpireAt string
	}{
		{
			name:         "valid poll with expiry",
			request:      models.CreatePollRequest{Title: "Lunch", ExpireAt: "2025-04-01 12:00"},
			wantStatus:   http.StatusCreated,
			wantExpireAt: "2025-04-01 12:00",
		},
		{
			name:         "missing expiry defaults to thirty days",
			request:      models.CreatePollRequest{Title: "Dinner"},
			wantStatus:   http.StatusCreated,
			wantExpireAt: "2025-04-13 15:09",
		},
		{
			name:         "expiry in the past is accepted",
			request:      models.CreatePollRequest{Title: "Old", ExpireAt: "2020-01-01 00:00"},
			wantStatus:   http.StatusCreated,
			wantExpireAt: "2020-01-01 00:00",
		},
		{
			name:       "missing title",
			request:    models.CreatePollRequest{ExpireAt: "2025-04-01 12:00"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed expiry",
			request:    models.CreatePollRequest{Title: "Lunch", ExpireAt: "tomorrow"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/poll", tt.request, nil)
			w := httptest.NewRecorder()

			env.polls.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusCreated {
				var poll models.Poll
				testutil.AssertJSON(t, w, &poll)

				if poll.ID == "" {
					t.Error("Expected non-empty poll id")
				}
				if poll.Title != tt.request.Title {
					t.Errorf("Expected title %q, got %q", tt.request.Title, poll.Title)
				}
				if poll.ExpireAt != tt.wantExpireAt {
					t.Errorf("Expected expireAt %q, got %q", tt.wantExpireAt, poll.ExpireAt)
				}
			}
		})
	}
}

func TestCreatePoll_ValidationFields(t *testing.T) {
	env := setupHandlers(t)

	req := testutil.MakeRequest("POST", "/poll", models.CreatePollRequest{ExpireAt: "soon"}, nil)
	w := httptest.NewRecorder()
	env.polls.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Fields) != 2 {
		t.Fatalf("Expected 2 field errors, got %d: %+v", len(resp.Fields), resp.Fields)
	}

	fields := map[string]bool{}
	for _, f := range resp.Fields {
		fields[f.Field] = true
	}
	if !fields["title"] || !fields["expireAt"] {
		t.Errorf("Expected title and expireAt field errors, got %+v", resp.Fields)
	}
}

func TestCreatePoll_InvalidJSON(t *testing.T) {
	env := setupHandlers(t)

	req := httptest.NewRequest("POST", "/poll", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	env.polls.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	polls, _ := env.store.ListPolls(req.Context())
	if len(polls) != 0 {
		t.Errorf("Expected no stored polls, got %d", len(polls))
	}
}

func TestListPolls(t *testing.T) {
	env := setupHandlers(t)

	t.Run("empty store returns empty array", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/poll", nil, nil)
		w := httptest.NewRecorder()
		env.polls.ListPolls(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Errorf("Expected [], got %s", body)
		}
	})

	t.Run("lists open and closed polls", func(t *testing.T) {
		testutil.CreateTestPoll(t, env.store, "Open", testutil.OpenExpireAt)
		testutil.CreateTestPoll(t, env.store, "Closed", testutil.ClosedExpireAt)

		req := testutil.MakeRequest("GET", "/poll", nil, nil)
		w := httptest.NewRecorder()
		env.polls.ListPolls(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var polls []models.Poll
		testutil.AssertJSON(t, w, &polls)

		if len(polls) != 2 {
			t.Fatalf("Expected 2 polls, got %d", len(polls))
		}
		if polls[0].Title != "Open" || polls[1].Title != "Closed" {
			t.Errorf("Expected insertion order, got %q, %q", polls[0].Title, polls[1].Title)
		}
	})
}
