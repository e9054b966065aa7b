package game

import (
	"encoding/json"
	"strings"
)

// Encode serializes a state for storage.
func Encode(s State) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode restores a state from its stored form. The second return is false
// for empty or malformed input: an unreadable blob is treated as no prior
// state, never as a fatal condition, so a corrupt store just starts a fresh
// game.
func Decode(text string) (State, bool) {
	if strings.TrimSpace(text) == "" {
		return State{}, false
	}

	var s State
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return State{}, false
	}

	if s.TotalQuestions < 1 || s.TotalQuestions > MaxQuestions {
		return State{}, false
	}
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex > MaxQuestions {
		return State{}, false
	}

	// Older blobs may carry fewer answer slots; pad to full capacity.
	if len(s.AnswerState) < MaxQuestions {
		s.AnswerState = append(s.AnswerState, make([]bool, MaxQuestions-len(s.AnswerState))...)
	}

	return s, true
}
