package notifier

import (
	"fmt"
	"io"

	"github.com/Alonso287/onthisday/internal/game"
)

// DryRunNotifier prints the share text without posting it.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the post that would be made.
func (n *DryRunNotifier) Notify(state game.State, gameNumber int64) error {
	text := FormatShare(state, gameNumber)
	fmt.Fprintln(n.out, "--- Post (dry run) ---")
	fmt.Fprintln(n.out, text)
	fmt.Fprintf(n.out, "\n(Length: %d characters)\n", len(text))
	return nil
}
