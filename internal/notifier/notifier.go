package notifier

import (
	"fmt"
	"strings"

	"github.com/Alonso287/onthisday/internal/game"
)

// Notifier posts a finished game's result somewhere.
type Notifier interface {
	// Notify shares the result for the given game state.
	Notify(state game.State, gameNumber int64) error
}

// maxPostLength is the character budget for a single post.
const maxPostLength = 280

// FormatShare renders the share text for a finished day.
func FormatShare(state game.State, gameNumber int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Wikipedia: On This Day #%d\n\n", gameNumber)
	fmt.Fprintf(&b, "I got %d/%d right!\n", state.Score(), state.TotalQuestions)

	for i := 0; i < state.TotalQuestions && i < len(state.AnswerState); i++ {
		if state.AnswerState[i] {
			b.WriteString("🟩")
		} else {
			b.WriteString("🟥")
		}
	}
	b.WriteString("\n\n#OnThisDay")

	text := b.String()
	if len(text) > maxPostLength {
		text = text[:maxPostLength-3] + "..."
	}
	return text
}
