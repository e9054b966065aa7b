// Package selection chooses the pair of events behind each daily quiz
// question. Selection is fully deterministic: the shuffle seed is derived
// from the calendar date alone, so the same date always produces the same
// questions, across process restarts and across machines.
package selection

import (
	"errors"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
)

// ErrNotEnoughEvents indicates the day's catalog has fewer than two events
// usable as quiz questions. This is a data-sufficiency failure, distinct from
// a failure to reach the catalog at all.
var ErrNotEnoughEvents = errors.New("not enough eligible events for a question")

// Seed derives the shuffle seed for a calendar date. All questions for a
// given day share one seed, and therefore one shuffle permutation.
func Seed(month, day int) int64 {
	return int64(month*100 + day)
}

// Pair selects the two distinct events for question number index on the given
// month/day. now supplies the upper bound for eligible years.
//
// The question index does not influence which pair is returned: every
// question on a day draws positions [0] and [1] of the same seeded shuffle.
// Restarting mid-game therefore reproduces the question the player was
// looking at, which is the property the whole game leans on.
func Pair(events []event.Event, month, day, index int, now time.Time) (event.Event, event.Event, error) {
	_ = index

	eligible := event.FilterEligible(events, now.Year())
	if len(eligible) < 2 {
		return event.Event{}, event.Event{}, ErrNotEnoughEvents
	}

	shuffle(eligible, newSplitMix64(Seed(month, day)))
	return eligible[0], eligible[1], nil
}
