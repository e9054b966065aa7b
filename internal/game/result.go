package game

import "errors"

// Session operation errors, carried inside a Failed result.
var (
	// ErrNotLoaded means an operation ran before a successful Load.
	ErrNotLoaded = errors.New("game state not loaded")
	// ErrAlreadyAnswered means SubmitAnswer ran twice for one question.
	ErrAlreadyAnswered = errors.New("current question already answered")
	// ErrNoAnswer means Advance ran before an answer was submitted.
	ErrNoAnswer = errors.New("no answer submitted for the current question")
	// ErrGameComplete means today's game is already finished.
	ErrGameComplete = errors.New("today's game is already complete")
)

// Result is the outcome of a session operation. The set of variants is
// closed: Started, Ended, Success, QuestionCorrect, QuestionIncorrect and
// Failed, so a type switch over them can be checked for exhaustiveness.
type Result interface {
	isResult()
}

// Started means a fresh game began for today (first visit or rollover from a
// completed previous day).
type Started struct {
	State State
}

// Ended means today's final question has been advanced past, or a load found
// today's game already finished.
type Ended struct {
	State State
}

// Success is a plain state update: a mid-game resume on load, or an advance
// to the next question.
type Success struct {
	State State
}

// QuestionCorrect means the submitted year matched the event's year.
type QuestionCorrect struct {
	State State
}

// QuestionIncorrect means the submitted year did not match.
type QuestionIncorrect struct {
	State State
}

// Failed carries the error that aborted an operation. The session state is
// left exactly as it was.
type Failed struct {
	Err error
}

func (Started) isResult()           {}
func (Ended) isResult()             {}
func (Success) isResult()           {}
func (QuestionCorrect) isResult()   {}
func (QuestionIncorrect) isResult() {}
func (Failed) isResult()            {}
