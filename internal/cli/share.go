package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alonso287/onthisday/internal/game"
	"github.com/Alonso287/onthisday/internal/notifier"
)

var flagDryRun bool

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Post today's result",
		Long: `Post today's finished result to Twitter. Credentials come from the
TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN and
TWITTER_ACCESS_SECRET environment variables.`,
		RunE: runShare,
	}
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the post without sending it")
	return cmd
}

func runShare(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	st, ok := game.Decode(a.prefs.GameState())
	if !ok {
		return fmt.Errorf("no saved game to share")
	}
	if !st.Completed() {
		return fmt.Errorf("finish today's game before sharing")
	}

	now := gameDate()
	q := st.CurrentQuestion
	if q.Month != int(now.Month()) || q.Day != now.Day() {
		return fmt.Errorf("saved game is from %02d-%02d, not today", q.Month, q.Day)
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(os.Stdout)
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tw
	}

	if err := n.Notify(st, a.prefs.GameNumberFor(now)); err != nil {
		return fmt.Errorf("posting result: %w", err)
	}
	if !flagDryRun {
		fmt.Println("Posted.")
	}
	return nil
}
