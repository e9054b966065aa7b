package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alonso287/onthisday/internal/catalog"
	"github.com/Alonso287/onthisday/internal/config"
	"github.com/Alonso287/onthisday/internal/event"
	"github.com/Alonso287/onthisday/internal/game"
	"github.com/Alonso287/onthisday/internal/logger"
	"github.com/Alonso287/onthisday/internal/prefs"
	"github.com/Alonso287/onthisday/internal/readinglist"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagDBPath  string
	flagDate    int64
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onthisday",
		Short: "Play the daily 'On This Day' history quiz",
		Long: `A daily history quiz built on Wikipedia's on-this-day feed.
Each question shows an event from today's date in history; guess which of
two years it happened in. One game per calendar day.`,
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for game state (default $OTD_DATA_DIR or ~/.local/share/onthisday)")
	cmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database for game state instead of the file store")
	cmd.PersistentFlags().Int64Var(&flagDate, "date", 0, "Unix timestamp to play as; replays that date's game without touching history")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newPlayCmd(), newStatsCmd(), newResetCmd(), newShareCmd())

	return cmd
}

// app bundles the wired-up pieces a command needs. The game engine is built
// on demand because constructing it records the last-visit marker, and
// read-only commands like stats must not do that.
type app struct {
	cfg       *config.Config
	prefs     *prefs.Prefs
	showIntro bool
	closers   []func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	a := &app{cfg: cfg}

	var store prefs.Store
	if cfg.DBPath != "" {
		s, err := prefs.OpenSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		a.closers = append(a.closers, s.Close)
		store = s
	} else {
		s, err := prefs.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing data directory: %w", err)
		}
		store = s
	}
	a.prefs = prefs.New(store)
	a.showIntro = a.prefs.ShouldShowEntryDialog(time.Now())

	return a, nil
}

// newEngine wires the catalog and session. Constructing the session records
// the last-visit marker, so only commands that play call this.
func (a *app) newEngine() *game.Engine {
	source := catalog.NewFallbackSource(
		catalog.NewRESTSourceWithBaseURL(a.cfg.FeedBaseURL),
		catalog.NewScrapeSource(),
	)
	cached := catalog.NewCachedSource(source, catalog.NewCacheWithTTL(a.cfg.CacheTTL))

	var opts []game.Option
	if flagDate != 0 {
		opts = append(opts, game.WithDateOverride(flagDate))
	}
	if a.cfg.ReadingListDB != "" {
		rl, err := readinglist.Open(a.cfg.ReadingListDB)
		if err != nil {
			logger.Warn("reading list unavailable", logger.Fields{
				"path":  a.cfg.ReadingListDB,
				"error": err.Error(),
			})
		} else {
			a.closers = append(a.closers, rl.Close)
			opts = append(opts, game.WithSavedPages(rl))
		}
	}

	return game.New(cached, a.prefs, opts...)
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("closing resource failed", logger.Fields{"error": err.Error()})
		}
	}
}

// gameDate is the date commands operate on: the override when set, the real
// clock otherwise.
func gameDate() time.Time {
	if flagDate != 0 {
		return event.DateFromEpochSeconds(flagDate)
	}
	return time.Now()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
