// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestCreatePoll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		expireAt     string
		wantExpireAt string
	}{
		{
			name:         "default expiry is 30 days out",
			expireAt:     "",
			wantExpireAt: "2025-04-13 15:09",
		},
		{
			name:         "explicit expiry kept",
			expireAt:     "2025-12-24 18:00",
			wantExpireAt: "2025-12-24 18:00",
		},
		{
			name:         "expiry in the past is accepted",
			expireAt:     testutil.ClosedExpireAt,
			wantExpireAt: testutil.ClosedExpireAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewTestStore(t)
			svc := NewPollService(s, testutil.NewTestClock(), testutil.NewTestLogger(t))

			poll, err := svc.CreatePoll(ctx, "Lunch", tt.expireAt)
			if err != nil {
				t.Fatalf("CreatePoll failed: %v", err)
			}
			if poll.ID == "" {
				t.Error("Expected store-assigned ID")
			}
			if poll.ExpireAt != tt.wantExpireAt {
				t.Errorf("Expected expireAt %s, got %s", tt.wantExpireAt, poll.ExpireAt)
			}

			stored, err := s.FindPoll(ctx, poll.ID)
			if err != nil {
				t.Fatalf("Poll not persisted: %v", err)
			}
			if stored != poll {
				t.Errorf("Expected stored %+v, got %+v", poll, stored)
			}
		})
	}
}

func TestCreatePoll_DefaultExpiryFollowsClock(t *testing.T) {
	ctx := context.Background()
	clk := testutil.NewTestClock()
	svc := NewPollService(testutil.NewTestStore(t), clk, testutil.NewTestLogger(t))

	for i := 0; i < 5; i++ {
		clk.Advance(17*time.Hour + 3*time.Minute + 11*time.Second)

		poll, err := svc.CreatePoll(ctx, "Standup", "")
		if err != nil {
			t.Fatalf("CreatePoll failed: %v", err)
		}

		want := clk.Now().AddDate(0, 0, models.DefaultPollDays).Format(models.TimestampLayout)
		if poll.ExpireAt != want {
			t.Errorf("Expected %s, got %s", want, poll.ExpireAt)
		}
	}
}

func TestCreatePoll_LogsTimeUntilClose(t *testing.T) {
	tests := []struct {
		name     string
		expireAt string
		want     string
	}{
		{"default expiry", "", `closes="4 weeks from now"`},
		{"past expiry", "2025-03-13 15:09", `closes="1 day ago"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			svc := NewPollService(testutil.NewTestStore(t), testutil.NewTestClock(), logger)

			if _, err := svc.CreatePoll(context.Background(), "Lunch", tt.expireAt); err != nil {
				t.Fatalf("CreatePoll failed: %v", err)
			}

			if logs := buf.String(); !strings.Contains(logs, tt.want) {
				t.Errorf("Expected %s in log, got:\n%s", tt.want, logs)
			}
		})
	}
}

func TestListPolls(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	svc := NewPollService(s, testutil.NewTestClock(), testutil.NewTestLogger(t))

	polls, err := svc.ListPolls(ctx)
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 0 {
		t.Errorf("Expected no polls, got %d", len(polls))
	}

	svc.CreatePoll(ctx, "Lunch", "")
	svc.CreatePoll(ctx, "Dinner", testutil.ClosedExpireAt)

	polls, err = svc.ListPolls(ctx)
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(polls))
	}
	if polls[0].Title != "Lunch" || polls[1].Title != "Dinner" {
		t.Errorf("Expected natural order [Lunch Dinner], got [%s %s]", polls[0].Title, polls[1].Title)
	}
}
