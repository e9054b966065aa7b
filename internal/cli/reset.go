package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alonso287/onthisday/internal/game"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restart today's game from the first question",
		Long: `Restart today's game from the first question. Collected articles and
past days' history are kept; only today's progress is cleared.`,
		RunE: runReset,
	}
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	eng := a.newEngine()
	if r, ok := eng.Load(cmd.Context()).(game.Failed); ok {
		return r.Err
	}
	if r, ok := eng.Reset().(game.Failed); ok {
		return r.Err
	}

	fmt.Println("Today's game has been reset.")
	return nil
}
