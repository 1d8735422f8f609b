// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func getResult(env *testEnv, pollID string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("GET", "/poll/"+pollID+"/result", nil, nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	env.results.GetResult(w, req)
	return w
}

func TestGetResult(t *testing.T) {
	env := setupHandlers(t)

	poll := testutil.CreateTestPoll(t, env.store, "Lunch", testutil.ClosedExpireAt)
	pizza := testutil.AddTestChoice(t, env.store, poll.ID, "Pizza")
	testutil.AddTestChoice(t, env.store, poll.ID, "Sushi")

	for i := 0; i < 3; i++ {
		if _, err := env.store.IncrementVotes(context.Background(), pizza.ID); err != nil {
			t.Fatalf("IncrementVotes: %v", err)
		}
	}

	w := getResult(env, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.Result
	testutil.AssertJSON(t, w, &result)

	if result.Poll.ID != poll.ID {
		t.Errorf("Expected poll %q, got %q", poll.ID, result.Poll.ID)
	}
	if len(result.Choices) != 2 {
		t.Fatalf("Expected 2 choices, got %d", len(result.Choices))
	}

	counts := map[string]int64{}
	for _, c := range result.Choices {
		counts[c.Title] = c.VoteCount
	}
	if counts["Pizza"] != 3 || counts["Sushi"] != 0 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestGetResult_NoChoices(t *testing.T) {
	env := setupHandlers(t)

	poll := testutil.CreateTestPoll(t, env.store, "Empty", testutil.OpenExpireAt)

	w := getResult(env, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.Contains(w.Body.String(), `"choices":[]`) {
		t.Errorf("Expected empty choices array, got %s", w.Body.String())
	}
}

func TestGetResult_UnknownPoll(t *testing.T) {
	env := setupHandlers(t)

	w := getResult(env, "nonexistent")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
