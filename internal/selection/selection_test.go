package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
)

var now = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func testEvents() []event.Event {
	return []event.Event{
		{Year: 1900, Text: "The first event happens."},
		{Year: 1912, Text: "An ocean liner sets sail."},
		{Year: 1950, Text: "A treaty is signed."},
		{Year: 1969, Text: "Humans walk on the Moon."},
		{Year: 1980, Text: "A volcano erupts."},
		{Year: 1997, Text: "A probe reaches Mars."},
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		month, day int
		want       int64
	}{
		{6, 15, 615},
		{1, 1, 101},
		{12, 31, 1231},
	}
	for _, tt := range tests {
		if got := Seed(tt.month, tt.day); got != tt.want {
			t.Errorf("Seed(%d, %d) = %d, want %d", tt.month, tt.day, got, tt.want)
		}
	}
}

func TestPairDeterministic(t *testing.T) {
	e1a, e2a, err := Pair(testEvents(), 6, 15, 0, now)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	e1b, e2b, err := Pair(testEvents(), 6, 15, 0, now)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}

	if e1a.Year != e1b.Year || e1a.Text != e1b.Text || e2a.Year != e2b.Year || e2a.Text != e2b.Text {
		t.Errorf("Pair() not deterministic: (%d, %d) vs (%d, %d)", e1a.Year, e2a.Year, e1b.Year, e2b.Year)
	}
	if e1a.Year == e2a.Year && e1a.Text == e2a.Text {
		t.Error("Pair() returned the same event twice")
	}
}

func TestPairIndexIndependent(t *testing.T) {
	// Every question on a day draws from the same shuffle positions, so the
	// index must not change the result.
	e1a, e2a, err := Pair(testEvents(), 6, 15, 0, now)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	e1b, e2b, err := Pair(testEvents(), 6, 15, 7, now)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	if e1a.Year != e1b.Year || e2a.Year != e2b.Year {
		t.Error("Pair() varies with question index")
	}
}

func TestPairFiltersIneligible(t *testing.T) {
	events := []event.Event{
		{Year: 0, Text: "No year recorded."},
		{Year: 2030, Text: "Not yet happened."},
		{Year: 1960, Text: "Signed in the year 1959."}, // leaks a year
		{Year: 1900, Text: "Eligible one."},
		{Year: 1950, Text: "Eligible two."},
	}

	e1, e2, err := Pair(events, 3, 9, 0, now)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	for _, e := range []event.Event{e1, e2} {
		if e.Year != 1900 && e.Year != 1950 {
			t.Errorf("Pair() selected ineligible event with year %d", e.Year)
		}
	}
	if e1.Year == e2.Year {
		t.Error("Pair() returned the same event twice")
	}
}

func TestPairNotEnoughEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
	}{
		{"Empty list", nil},
		{"Single eligible event", []event.Event{{Year: 1900, Text: "Only one."}}},
		{
			"All filtered out",
			[]event.Event{
				{Year: 0, Text: "Bad year."},
				{Year: 1900, Text: "Built in 1899."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Pair(tt.events, 6, 15, 0, now)
			if !errors.Is(err, ErrNotEnoughEvents) {
				t.Errorf("Pair() error = %v, want ErrNotEnoughEvents", err)
			}
		})
	}
}

func TestPairDoesNotMutateInput(t *testing.T) {
	events := testEvents()
	if _, _, err := Pair(events, 6, 15, 0, now); err != nil {
		t.Fatalf("Pair() error = %v", err)
	}

	orig := testEvents()
	for i := range events {
		if events[i].Year != orig[i].Year {
			t.Fatal("Pair() reordered the caller's event slice")
		}
	}
}
