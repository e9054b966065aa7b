package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Alonso287/onthisday/internal/event"
	"github.com/Alonso287/onthisday/internal/logger"
	"github.com/Alonso287/onthisday/internal/prefs"
	"github.com/Alonso287/onthisday/internal/selection"
)

// Catalog supplies the historical events for a month/day. A failure here
// aborts a load without touching state.
type Catalog interface {
	Events(ctx context.Context, month, day int) ([]event.Event, error)
}

// SavedPages reports reading-list membership for an article title. Lookups
// only annotate the day's articles; failures never block a load.
type SavedPages interface {
	IsSaved(ctx context.Context, title string) (bool, error)
}

// Engine owns one game session. All mutating operations are serialized; a
// new Load supersedes any load still in flight so a stale fetch can never
// overwrite newer state.
type Engine struct {
	mu      sync.Mutex
	catalog Catalog
	prefs   *prefs.Prefs
	saved   SavedPages
	now     func() time.Time

	// overrideDate, when set, replaces "today" throughout; used for
	// historical replays.
	overrideDate *time.Time

	state      State
	loaded     bool
	events     []event.Event
	savedPages []event.PageRef
	loadCancel context.CancelFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the wall clock. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithDateOverride replays the game for the date at the given epoch-seconds
// timestamp instead of today.
func WithDateOverride(epochSeconds int64) Option {
	return func(e *Engine) {
		d := event.DateFromEpochSeconds(epochSeconds)
		e.overrideDate = &d
	}
}

// WithSavedPages enables reading-list annotation of the day's articles.
func WithSavedPages(lookup SavedPages) Option {
	return func(e *Engine) { e.saved = lookup }
}

// New creates a session. The last-visit marker is recorded immediately, with
// the real date even when a replay override is active.
func New(catalog Catalog, p *prefs.Prefs, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		prefs:   p,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := p.SetLastVisitDate(e.now()); err != nil {
		logger.Warn("recording last visit failed", logger.Fields{"error": err.Error()})
	}

	return e
}

// today returns the session's game date.
func (e *Engine) today() time.Time {
	if e.overrideDate != nil {
		return *e.overrideDate
	}
	return e.now()
}

// Today exposes the session's game date (override-aware).
func (e *Engine) Today() time.Time {
	return e.today()
}

// Load fetches today's events, restores persisted state and reconciles it
// against today. It returns Started for a fresh game (first visit today or
// rollover from a finished previous day), Ended if today is already
// finished, Success for a mid-game resume, and Failed if the catalog is
// unreachable or has too few usable events.
func (e *Engine) Load(ctx context.Context) Result {
	e.mu.Lock()
	if e.loadCancel != nil {
		e.loadCancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	e.loadCancel = cancel
	today := e.today()
	month, day := int(today.Month()), today.Day()
	e.mu.Unlock()

	fetchStart := time.Now()
	events, err := e.catalog.Events(loadCtx, month, day)
	if err != nil {
		return Failed{Err: fmt.Errorf("fetching events: %w", err)}
	}
	logger.RecordTiming("catalog.fetch", time.Since(fetchStart))

	e.mu.Lock()
	defer e.mu.Unlock()

	// A newer load superseded this one while the fetch was in flight.
	if loadCtx.Err() != nil {
		return Failed{Err: loadCtx.Err()}
	}

	e.events = events

	var st State
	if decoded, ok := Decode(e.prefs.GameState()); ok {
		st = decoded
		if e.overrideDate != nil {
			question, err := e.composeLocked(month, day, 0, today)
			if err != nil {
				return Failed{Err: err}
			}
			st.CurrentQuestion = question
		}
	} else {
		question, err := e.composeLocked(month, day, 0, today)
		if err != nil {
			return Failed{Err: err}
		}
		st = NewState(e.prefs.QuestionsPerDay(), question)
	}

	e.annotateSavedPages(loadCtx, st.Articles)

	sameDay := st.CurrentQuestion.Month == month && st.CurrentQuestion.Day == day

	var res Result
	switch {
	case sameDay && st.CurrentQuestionIndex == 0 && !st.CurrentQuestion.GoToNext:
		// Just starting today's game.
		st.Articles = nil
		res = Started{State: st}
	case sameDay && st.Completed():
		// Already done for today.
		res = Ended{State: st}
	case !sameDay && st.Completed():
		// Back from a previous day's finished game: roll over into a new day.
		question, err := e.composeLocked(month, day, 0, today)
		if err != nil {
			return Failed{Err: err}
		}
		st.CurrentQuestion = question
		st.CurrentQuestionIndex = 0
		st.AnswerState = make([]bool, MaxQuestions)
		st.Articles = nil
		res = Started{State: st}
	default:
		// Mid-game resume.
		res = Success{State: st}
	}

	e.state = st
	e.loaded = true
	e.persistLocked()

	logger.IncrCounter("game.loads")
	logger.Debug("game state loaded", logger.Fields{
		"month": month,
		"day":   day,
		"index": st.CurrentQuestionIndex,
	})

	return res
}

// SubmitAnswer records the player's year guess for the current question,
// scores it and collects the question's articles. It returns QuestionCorrect
// or QuestionIncorrect; answering the same question twice fails with
// ErrAlreadyAnswered.
func (e *Engine) SubmitAnswer(selectedYear int) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return Failed{Err: ErrNotLoaded}
	}
	if e.state.Completed() {
		return Failed{Err: ErrGameComplete}
	}
	if e.state.CurrentQuestion.GoToNext {
		return Failed{Err: ErrAlreadyAnswered}
	}

	year := selectedYear
	e.state.CurrentQuestion.YearSelected = &year
	e.state.CurrentQuestion.GoToNext = true

	correct := e.state.CurrentQuestion.Event1.Year == selectedYear
	e.state.AnswerState[e.state.CurrentQuestionIndex] = correct
	e.state.Articles = append(e.state.Articles, e.state.CurrentQuestion.Event1.PrimaryPages(2)...)

	e.persistLocked()

	if correct {
		logger.IncrCounter("game.answers.correct")
		return QuestionCorrect{State: e.state}
	}
	logger.IncrCounter("game.answers.incorrect")
	return QuestionIncorrect{State: e.state}
}

// Advance moves past an answered question. On the last question it folds
// today's answers into the history and returns Ended; otherwise it selects
// the next question and returns Success. Advancing an unanswered question
// fails with ErrNoAnswer.
func (e *Engine) Advance() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return Failed{Err: ErrNotLoaded}
	}
	if e.state.Completed() {
		return Failed{Err: ErrGameComplete}
	}
	if !e.state.CurrentQuestion.GoToNext {
		return Failed{Err: ErrNoAnswer}
	}

	today := e.today()
	month, day := int(today.Month()), today.Day()
	next := e.state.CurrentQuestionIndex + 1

	question, err := e.composeLocked(month, day, next, today)
	if err != nil {
		return Failed{Err: err}
	}
	e.state.CurrentQuestion = question
	e.state.CurrentQuestionIndex = next

	if next >= e.state.TotalQuestions {
		key := DayKey{Year: today.Year(), Month: month, Day: day}
		e.state.History = e.state.History.WithDay(key, e.state.AnswerState)
		e.persistLocked()
		return Ended{State: e.state}
	}

	e.persistLocked()
	return Success{State: e.state}
}

// Reset restarts today's game: question zero, all answer slots cleared.
// History and collected articles are left untouched.
func (e *Engine) Reset() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return Failed{Err: ErrNotLoaded}
	}

	today := e.today()
	month, day := int(today.Month()), today.Day()

	question, err := e.composeLocked(month, day, 0, today)
	if err != nil {
		return Failed{Err: err}
	}
	e.state.CurrentQuestion = question
	e.state.CurrentQuestionIndex = 0
	e.state.AnswerState = make([]bool, MaxQuestions)

	e.persistLocked()
	return Success{State: e.state}
}

// State returns the current game state. Callers must treat it as read-only.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SavedPages returns the subset of today's articles found on the player's
// reading lists by the last Load.
func (e *Engine) SavedPages() []event.PageRef {
	e.mu.Lock()
	defer e.mu.Unlock()
	pages := make([]event.PageRef, len(e.savedPages))
	copy(pages, e.savedPages)
	return pages
}

// composeLocked builds the question for a month/day/index from the fetched
// events. Callers hold e.mu.
func (e *Engine) composeLocked(month, day, index int, today time.Time) (QuestionState, error) {
	event1, event2, err := selection.Pair(e.events, month, day, index, today)
	if err != nil {
		return QuestionState{}, err
	}
	return QuestionState{
		Event1: event1,
		Event2: event2,
		Month:  month,
		Day:    day,
	}, nil
}

// annotateSavedPages refreshes the saved-pages annotation for the given
// articles. Lookup failures skip the page. Callers hold e.mu.
func (e *Engine) annotateSavedPages(ctx context.Context, articles []event.PageRef) {
	e.savedPages = nil
	if e.saved == nil {
		return
	}
	for _, page := range articles {
		saved, err := e.saved.IsSaved(ctx, page.Title)
		if err != nil {
			logger.Debug("saved-page lookup failed", logger.Fields{
				"title": page.Title,
				"error": err.Error(),
			})
			continue
		}
		if saved {
			e.savedPages = append(e.savedPages, page)
		}
	}
}

// persistLocked writes the state through to the store. Persistence is best
// effort: a write failure is logged, not surfaced, and the atomic replace in
// the store keeps the previous blob valid. Callers hold e.mu.
func (e *Engine) persistLocked() {
	blob, err := Encode(e.state)
	if err != nil {
		logger.Warn("encoding game state failed", logger.Fields{"error": err.Error()})
		return
	}
	if err := e.prefs.SetGameState(blob); err != nil {
		logger.Warn("persisting game state failed", logger.Fields{"error": err.Error()})
	}
}
