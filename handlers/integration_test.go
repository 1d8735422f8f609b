// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create poll
// 2. Add choices
// 3. Cast votes
// 4. Verify results
// 5. Verify nothing changes after expiry
func TestFullVotingWorkflow(t *testing.T) {
	env := setupHandlers(t)

	// Step 1: Create a poll
	req := testutil.MakeRequest("POST", "/poll", models.CreatePollRequest{Title: "Lunch", ExpireAt: "2025-04-01 12:00"}, nil)
	w := httptest.NewRecorder()
	env.polls.CreatePoll(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	t.Logf("Step 1 - Created poll: %s", poll.ID)

	// Step 2: Add choices
	choiceIDs := map[string]string{}
	for _, title := range []string{"Pizza", "Sushi"} {
		req := testutil.MakeRequest("POST", "/choice", models.CreateChoiceRequest{Title: title, PollID: poll.ID}, nil)
		w := httptest.NewRecorder()
		env.choices.AddChoice(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Add choice %q failed: %d - %s", title, w.Code, w.Body.String())
		}

		var choice models.Choice
		testutil.AssertJSON(t, w, &choice)
		choiceIDs[title] = choice.ID
	}

	// Step 3: Vote Pizza twice and Sushi once
	for _, title := range []string{"Pizza", "Pizza", "Sushi"} {
		if w := castVote(env, choiceIDs[title]); w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Vote for %q failed: %d - %s", title, w.Code, w.Body.String())
		}
	}

	// Step 4: Results
	w = getResult(env, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.Result
	testutil.AssertJSON(t, w, &result)

	counts := map[string]int64{}
	for _, c := range result.Choices {
		counts[c.Title] = c.VoteCount
	}
	if counts["Pizza"] != 2 || counts["Sushi"] != 1 {
		t.Fatalf("Step 4 - Unexpected counts: %v", counts)
	}

	// Step 5: After expiry, votes and new choices are refused but results stay readable
	env.clock.Set(testutil.TestNow.AddDate(0, 1, 0))

	testutil.AssertStatus(t, castVote(env, choiceIDs["Pizza"]), http.StatusForbidden)

	req = testutil.MakeRequest("POST", "/choice", models.CreateChoiceRequest{Title: "Tacos", PollID: poll.ID}, nil)
	w = httptest.NewRecorder()
	env.choices.AddChoice(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = getResult(env, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var after models.Result
	testutil.AssertJSON(t, w, &after)
	if len(after.Choices) != 2 {
		t.Errorf("Step 5 - Expected 2 choices after expiry, got %d", len(after.Choices))
	}
}

// TestPastExpiryWorkflow covers a poll created already closed
func TestPastExpiryWorkflow(t *testing.T) {
	env := setupHandlers(t)

	req := testutil.MakeRequest("POST", "/poll", models.CreatePollRequest{Title: "Old", ExpireAt: "2020-01-01 00:00"}, nil)
	w := httptest.NewRecorder()
	env.polls.CreatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)

	req = testutil.MakeRequest("POST", "/choice", models.CreateChoiceRequest{Title: "X", PollID: poll.ID}, nil)
	w = httptest.NewRecorder()
	env.choices.AddChoice(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = getResult(env, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)
}
