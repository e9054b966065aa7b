package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alonso287/onthisday/internal/game"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your answer history",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	st, ok := game.Decode(a.prefs.GameState())
	result := BuildStats(st, ok, a.prefs, gameDate())

	return WriteStats(os.Stdout, result, format)
}
