package prefs

import (
	"strconv"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
)

// Store keys. All game markers live under the otd. prefix.
const (
	keyGameState       = "otd.game_state"
	keyLastVisitDate   = "otd.last_visit_date"
	keyGameStartDate   = "otd.game_start_date"
	keyGameEndDate     = "otd.game_end_date"
	keyQuestionsPerDay = "otd.questions_per_day"
)

// DefaultQuestionsPerDay is the quota used when no preference is stored.
const DefaultQuestionsPerDay = 10

// Prefs exposes the game's typed markers over a Store.
type Prefs struct {
	store Store
}

// New wraps a store.
func New(store Store) *Prefs {
	return &Prefs{store: store}
}

// GameState returns the serialized game state blob, or "" if none is stored.
// Store read failures are folded into absence: a blob we cannot read is a
// blob we do not have.
func (p *Prefs) GameState() string {
	value, ok, err := p.store.Get(keyGameState)
	if err != nil || !ok {
		return ""
	}
	return value
}

// SetGameState persists the serialized game state blob.
func (p *Prefs) SetGameState(blob string) error {
	return p.store.Set(keyGameState, blob)
}

// LastVisitDate returns the stored last-visit marker, or "" if unset.
func (p *Prefs) LastVisitDate() string {
	value, ok, err := p.store.Get(keyLastVisitDate)
	if err != nil || !ok {
		return ""
	}
	return value
}

// SetLastVisitDate records t's calendar date as the last visit.
func (p *Prefs) SetLastVisitDate(t time.Time) error {
	return p.store.Set(keyLastVisitDate, event.FormatISODate(t))
}

// ShouldShowEntryDialog reports whether the entry prompt should appear: yes
// when no visit is recorded, the marker is unreadable, or the recorded
// day-of-month differs from today's. The comparison is deliberately
// day-of-month only, not a full date.
func (p *Prefs) ShouldShowEntryDialog(now time.Time) bool {
	marker := p.LastVisitDate()
	if marker == "" {
		return true
	}
	prev, err := event.ParseISODate(marker)
	if err != nil {
		return true
	}
	return prev.Day() != now.Day()
}

// GameStartDate returns the start of the availability window, or epoch day 0
// when unset or unparseable.
func (p *Prefs) GameStartDate() time.Time {
	return p.dateMarker(keyGameStartDate)
}

// GameEndDate returns the end of the availability window, or epoch day 0
// when unset or unparseable.
func (p *Prefs) GameEndDate() time.Time {
	return p.dateMarker(keyGameEndDate)
}

// SetGameWindow stores both window markers.
func (p *Prefs) SetGameWindow(start, end time.Time) error {
	if err := p.store.Set(keyGameStartDate, event.FormatISODate(start)); err != nil {
		return err
	}
	return p.store.Set(keyGameEndDate, event.FormatISODate(end))
}

func (p *Prefs) dateMarker(key string) time.Time {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	value, ok, err := p.store.Get(key)
	if err != nil || !ok {
		return epoch
	}
	t, err := event.ParseISODate(value)
	if err != nil {
		return epoch
	}
	return t
}

// IsGameActive reports whether the game is playable. The availability window
// is recorded but not yet enforced.
func (p *Prefs) IsGameActive() bool {
	return true
}

// GameNumberFor returns the ordinal of now's game within the availability
// window (day 0 = the window's start date).
func (p *Prefs) GameNumberFor(now time.Time) int64 {
	return event.EpochDay(now) - event.EpochDay(p.GameStartDate())
}

// DaysLeft returns how many days remain until the window closes. Negative
// when the window has already closed.
func (p *Prefs) DaysLeft(now time.Time) int64 {
	return event.EpochDay(p.GameEndDate()) - event.EpochDay(now)
}

// QuestionsPerDay returns the configured daily question quota.
func (p *Prefs) QuestionsPerDay() int {
	value, ok, err := p.store.Get(keyQuestionsPerDay)
	if err != nil || !ok {
		return DefaultQuestionsPerDay
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return DefaultQuestionsPerDay
	}
	return n
}

// SetQuestionsPerDay stores the daily question quota.
func (p *Prefs) SetQuestionsPerDay(n int) error {
	return p.store.Set(keyQuestionsPerDay, strconv.Itoa(n))
}
