// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/danielhkuo/quickly-vote/clock"
	"github.com/danielhkuo/quickly-vote/service"
	"github.com/danielhkuo/quickly-vote/store/memory"
	"github.com/danielhkuo/quickly-vote/testutil"
)

type testEnv struct {
	store   *memory.Store
	clock   *clock.Fake
	polls   *PollHandler
	choices *ChoiceHandler
	votes   *VoteHandler
	results *ResultsHandler
}

// setupHandlers wires every handler to one memory store and a fake clock
func setupHandlers(t *testing.T) *testEnv {
	t.Helper()

	s := testutil.NewTestStore(t)
	clk := testutil.NewTestClock()
	logger := testutil.NewTestLogger(t)

	return &testEnv{
		store:   s,
		clock:   clk,
		polls:   NewPollHandler(service.NewPollService(s, clk, logger)),
		choices: NewChoiceHandler(service.NewChoiceService(s, clk, logger)),
		votes:   NewVoteHandler(service.NewVoteService(s, clk, logger)),
		results: NewResultsHandler(service.NewResultAggregator(s, logger)),
	}
}
