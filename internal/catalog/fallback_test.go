package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Alonso287/onthisday/internal/event"
)

func TestFallbackSourcePrimaryWins(t *testing.T) {
	primary := &fakeSource{events: []event.Event{{Year: 1969, Text: "Primary event."}}}
	secondary := &fakeSource{events: []event.Event{{Year: 1900, Text: "Secondary event."}}}
	src := NewFallbackSource(primary, secondary)

	events, err := src.Events(context.Background(), 6, 15)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 || events[0].Year != 1969 {
		t.Errorf("got %+v, want the primary's event", events)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestFallbackSourceFallsBack(t *testing.T) {
	primary := &fakeSource{err: errors.New("feed down")}
	secondary := &fakeSource{events: []event.Event{{Year: 1900, Text: "Secondary event."}}}
	src := NewFallbackSource(primary, secondary)

	events, err := src.Events(context.Background(), 6, 15)
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 || events[0].Year != 1900 {
		t.Errorf("got %+v, want the secondary's event", events)
	}
}

func TestFallbackSourceBothFail(t *testing.T) {
	primary := &fakeSource{err: errors.New("feed down")}
	secondary := &fakeSource{err: errors.New("scrape down")}
	src := NewFallbackSource(primary, secondary)

	if _, err := src.Events(context.Background(), 6, 15); err == nil {
		t.Fatal("expected an error when both sources fail")
	}
}

func TestFallbackSourceCancelledContext(t *testing.T) {
	primary := &fakeSource{err: errors.New("interrupted")}
	secondary := &fakeSource{events: []event.Event{{Year: 1900, Text: "Secondary event."}}}
	src := NewFallbackSource(primary, secondary)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Events(ctx, 6, 15); err == nil {
		t.Fatal("expected the primary's error for a cancelled context")
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times after cancellation, want 0", secondary.calls)
	}
}
