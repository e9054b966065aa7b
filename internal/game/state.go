package game

import (
	"github.com/Alonso287/onthisday/internal/event"
)

// MaxQuestions is the fixed capacity of a day's answer slots. The per-day
// quota is configurable but never exceeds this.
const MaxQuestions = 10

// QuestionState is one quiz question: two distinct events from the day's
// catalog, the player's guess once submitted, and whether the question has
// been resolved and is ready to advance.
type QuestionState struct {
	Event1       event.Event `json:"event1"`
	Event2       event.Event `json:"event2"`
	Month        int         `json:"month"`
	Day          int         `json:"day"`
	YearSelected *int        `json:"yearSelected,omitempty"`
	GoToNext     bool        `json:"goToNext"`
}

// Answered reports whether a guess has been recorded for this question.
func (q QuestionState) Answered() bool {
	return q.YearSelected != nil
}

// State is the full persisted game state for a session.
type State struct {
	TotalQuestions       int             `json:"totalQuestions"`
	CurrentQuestionIndex int             `json:"currentQuestionIndex"`
	AnswerState          []bool          `json:"answerState"`
	Articles             []event.PageRef `json:"articles"`
	History              History         `json:"answerStateHistory"`
	CurrentQuestion      QuestionState   `json:"currentQuestionState"`
}

// NewState creates a fresh state for a day. totalQuestions is clamped to
// [1, MaxQuestions]; the answer slots always have MaxQuestions capacity.
func NewState(totalQuestions int, question QuestionState) State {
	if totalQuestions < 1 {
		totalQuestions = 1
	}
	if totalQuestions > MaxQuestions {
		totalQuestions = MaxQuestions
	}
	return State{
		TotalQuestions:  totalQuestions,
		AnswerState:     make([]bool, MaxQuestions),
		CurrentQuestion: question,
	}
}

// Completed reports whether every question for the day has been advanced
// past.
func (s State) Completed() bool {
	return s.CurrentQuestionIndex >= s.TotalQuestions
}

// Score counts the correctly answered questions so far today.
func (s State) Score() int {
	score := 0
	limit := s.TotalQuestions
	if limit > len(s.AnswerState) {
		limit = len(s.AnswerState)
	}
	for _, correct := range s.AnswerState[:limit] {
		if correct {
			score++
		}
	}
	return score
}
