package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Alonso287/onthisday/internal/game"
	"github.com/Alonso287/onthisday/internal/prefs"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// DayStats is one day's line in the history summary.
type DayStats struct {
	Date    string `json:"date"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
	Squares string `json:"squares"`
}

// StatsResult contains the history summary to be output
type StatsResult struct {
	GeneratedAt  time.Time  `json:"generated_at"`
	GameNumber   int64      `json:"game_number"`
	DaysLeft     int64      `json:"days_left"`
	DaysPlayed   int        `json:"days_played"`
	TotalCorrect int        `json:"total_correct"`
	Days         []DayStats `json:"days"`
	Today        *DayStats  `json:"today,omitempty"`
}

// BuildStats summarizes the persisted state's answer history. hasState is
// false when nothing has been played yet.
func BuildStats(st game.State, hasState bool, p *prefs.Prefs, now time.Time) *StatsResult {
	result := &StatsResult{
		GeneratedAt: now.UTC(),
		GameNumber:  p.GameNumberFor(now),
		DaysLeft:    p.DaysLeft(now),
	}
	if !hasState {
		return result
	}

	total := st.TotalQuestions
	if total < 1 || total > game.MaxQuestions {
		total = prefs.DefaultQuestionsPerDay
	}

	for _, key := range st.History.Days() {
		answers, _ := st.History.Get(key)
		day := DayStats{
			Date:    fmt.Sprintf("%04d-%02d-%02d", key.Year, key.Month, key.Day),
			Correct: countCorrect(answers, total),
			Total:   total,
			Squares: squares(answers, total),
		}
		result.Days = append(result.Days, day)
		result.TotalCorrect += day.Correct
	}
	result.DaysPlayed = len(result.Days)

	// Today's finished game lives in the live answer slots until rollover
	// folds it into the history.
	if st.Completed() {
		q := st.CurrentQuestion
		result.Today = &DayStats{
			Date:    fmt.Sprintf("%04d-%02d-%02d", now.Year(), q.Month, q.Day),
			Correct: st.Score(),
			Total:   st.TotalQuestions,
			Squares: squares(st.AnswerState, st.TotalQuestions),
		}
	}

	return result
}

// WriteStats writes the summary in the specified format
func WriteStats(w io.Writer, result *StatsResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeStatsText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeStatsText(w io.Writer, result *StatsResult) error {
	fmt.Fprintf(w, "On This Day #%d", result.GameNumber)
	if result.DaysLeft > 0 {
		fmt.Fprintf(w, " (%d days left)", result.DaysLeft)
	}
	fmt.Fprintln(w)

	if result.DaysPlayed == 0 && result.Today == nil {
		fmt.Fprintln(w, "No games played yet.")
		return nil
	}

	for _, day := range result.Days {
		fmt.Fprintf(w, "%s  %2d/%d  %s\n", day.Date, day.Correct, day.Total, day.Squares)
	}
	if result.Today != nil {
		fmt.Fprintf(w, "%s  %2d/%d  %s  (today)\n", result.Today.Date, result.Today.Correct, result.Today.Total, result.Today.Squares)
	}
	if result.DaysPlayed > 0 {
		fmt.Fprintf(w, "\nTotal: %d correct across %d days\n", result.TotalCorrect, result.DaysPlayed)
	}

	return nil
}

// countCorrect counts true slots within the day's quota.
func countCorrect(answers []bool, total int) int {
	if total > len(answers) {
		total = len(answers)
	}
	n := 0
	for _, ok := range answers[:total] {
		if ok {
			n++
		}
	}
	return n
}

// squares renders the answer slots as share-style squares.
func squares(answers []bool, total int) string {
	if total > len(answers) {
		total = len(answers)
	}
	var b strings.Builder
	for _, ok := range answers[:total] {
		if ok {
			b.WriteString("🟩")
		} else {
			b.WriteString("🟥")
		}
	}
	return b.String()
}
