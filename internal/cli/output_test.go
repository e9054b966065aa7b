package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Alonso287/onthisday/internal/game"
	"github.com/Alonso287/onthisday/internal/prefs"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// statsFixture is a finished session for June 15 with two prior days of
// history.
func statsFixture() game.State {
	answers := make([]bool, game.MaxQuestions)
	answers[0] = true
	answers[2] = true

	st := game.State{
		TotalQuestions:       10,
		CurrentQuestionIndex: 10,
		AnswerState:          make([]bool, game.MaxQuestions),
		CurrentQuestion: game.QuestionState{
			Month: 6,
			Day:   15,
		},
	}
	st.AnswerState[0] = true
	st.AnswerState[1] = true
	st.AnswerState[2] = true
	st.History = st.History.
		WithDay(game.DayKey{Year: 2026, Month: 6, Day: 13}, answers).
		WithDay(game.DayKey{Year: 2026, Month: 6, Day: 14}, answers)
	return st
}

func statsPrefs(t *testing.T) *prefs.Prefs {
	t.Helper()
	p := prefs.New(newMemStore())
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	if err := p.SetGameWindow(start, end); err != nil {
		t.Fatalf("SetGameWindow: %v", err)
	}
	return p
}

func TestBuildStats(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	result := BuildStats(statsFixture(), true, statsPrefs(t), now)

	if result.DaysPlayed != 2 {
		t.Errorf("DaysPlayed = %d, want 2", result.DaysPlayed)
	}
	if result.TotalCorrect != 4 {
		t.Errorf("TotalCorrect = %d, want 4", result.TotalCorrect)
	}
	if result.GameNumber != 14 {
		t.Errorf("GameNumber = %d, want 14", result.GameNumber)
	}
	if len(result.Days) != 2 || result.Days[0].Date != "2026-06-13" {
		t.Fatalf("Days = %+v, want two days starting 2026-06-13", result.Days)
	}
	if result.Days[0].Correct != 2 || result.Days[0].Total != 10 {
		t.Errorf("day score = %d/%d, want 2/10", result.Days[0].Correct, result.Days[0].Total)
	}

	if result.Today == nil {
		t.Fatal("Today = nil, want today's finished game")
	}
	if result.Today.Date != "2026-06-15" || result.Today.Correct != 3 {
		t.Errorf("Today = %+v, want 2026-06-15 with 3 correct", result.Today)
	}
}

func TestBuildStatsNoState(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	result := BuildStats(game.State{}, false, statsPrefs(t), now)

	if result.DaysPlayed != 0 || result.Today != nil || len(result.Days) != 0 {
		t.Errorf("empty history should produce an empty summary, got %+v", result)
	}
}

func TestWriteStatsText(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	result := BuildStats(statsFixture(), true, statsPrefs(t), now)

	var buf bytes.Buffer
	if err := WriteStats(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"On This Day #14",
		"2026-06-13",
		"2026-06-14",
		"2026-06-15",
		"(today)",
		"Total: 4 correct across 2 days",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStatsJSON(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	result := BuildStats(statsFixture(), true, statsPrefs(t), now)

	var buf bytes.Buffer
	if err := WriteStats(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteStats: %v", err)
	}

	var decoded StatsResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.TotalCorrect != 4 || len(decoded.Days) != 2 {
		t.Errorf("decoded = %+v, want 4 correct across 2 days", decoded)
	}
}

func TestWriteStatsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStats(&buf, &StatsResult{}, OutputFormat("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSquares(t *testing.T) {
	got := squares([]bool{true, false, true, false, false, false, false, false, false, false}, 3)
	if got != "🟩🟥🟩" {
		t.Errorf("squares = %q, want green/red/green", got)
	}
}
