// slither is a terminal snake game.
//
// Usage:
//
//	slither                  - Play (main menu)
//	slither play             - Start a game right away
//	slither serve            - Start SSH server for remote play
//	slither scores           - Show the high score table
//
// Global flags:
//
//	-c, --config <path>  - Config file (default: ~/.slither/config.yaml)
//	--db <path>          - Database path (default: ~/.slither/slither.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/slithergame/slither/internal/app"
	"github.com/slithergame/slither/internal/config"
	"github.com/slithergame/slither/internal/core"
	"github.com/slithergame/slither/internal/game"
	"github.com/slithergame/slither/internal/highscore"
	"github.com/slithergame/slither/internal/storage"
	"github.com/slithergame/slither/internal/tui"
)

var version = "dev"

var (
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "slither",
	Short:   "Snake in your terminal",
	Version: version,
	Long: `Slither is a terminal snake game: eat fruit, grow, and avoid the
walls, the obstacles, and yourself.

Level options (wraparound, obstacles, fruit count, level size) are set in
the main menu and remembered between runs. Each option combination keeps
its own high score.

Examples:
  slither
  slither --config ./config.yaml
  slither serve --ssh :2222
  slither scores`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	return launch(false)
}

// launch builds the application and runs the TUI. With skipMenu the game
// starts immediately with the stored (or default) options.
func launch(skipMenu bool) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Files.DB = flagDBPath
	}

	logger, closeLog, err := newLogger(cfg.Files.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, notices := cfg.Options()

	// Load stored state. A broken database is never fatal: play continues
	// without persistence, with a notice unless the config silences it.
	table := highscore.NewTable()
	var persist app.Persister
	store, err := storage.Open(cfg.Files.DB)
	if err != nil {
		logger.Warn("continuing without persistence", "error", err)
		if !cfg.Files.IgnoreStorageErrors {
			notices = append(notices, "scores will not be saved")
		}
	} else {
		defer store.Close()
		persist = store
		opts = loadStored(store, table, opts, cfg.Files.IgnoreStorageErrors, logger, &notices)
	}

	checkTerminalSize(opts, &notices)

	a := app.New(opts, table, persist, logger)
	a.SetQuiet(cfg.Files.IgnoreStorageErrors)
	for _, n := range notices {
		logger.Warn(n)
		a.AddNotice(n)
	}
	if skipMenu {
		a.HandleAction(core.ActionPlay)
	}

	return tui.Run(a, tui.NewTheme(cfg.Theme), cfg.TickPeriod())
}

// storeReader is the read side of the storage layer used at startup.
type storeReader interface {
	LoadOptions() (game.Options, bool, error)
	LoadScores() (map[game.Options]int, error)
}

// loadStored reads the last-used options and the high score table. Read
// failures are logged and, unless quiet, surfaced as notices; they never
// abort the launch.
func loadStored(store storeReader, table *highscore.Table, opts game.Options, quiet bool, logger *log.Logger, notices *[]string) game.Options {
	if stored, found, err := store.LoadOptions(); err != nil {
		logger.Warn("could not load options", "error", err)
		if !quiet {
			*notices = append(*notices, "stored options could not be loaded")
		}
	} else if found {
		opts = stored
	}

	if scores, err := store.LoadScores(); err != nil {
		logger.Warn("could not load high scores", "error", err)
		if !quiet {
			*notices = append(*notices, "high scores could not be loaded")
		}
	} else {
		table.Load(scores)
	}
	return opts
}

// checkTerminalSize warns when the default level will not fit the
// terminal. The game still starts; the player can pick a smaller size.
func checkTerminalSize(opts game.Options, notices *[]string) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	lw, lh := opts.Size.Dims()
	// Border plus score bar and help line around the level.
	if lw+2 > w || lh+5 > h {
		*notices = append(*notices,
			fmt.Sprintf("terminal %dx%d is small for a %s level; pick a smaller size", w, h, opts.Size))
	}
}

// newLogger builds the application logger. With no log file configured
// output is discarded, since the TUI owns the terminal.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "slither",
	})
	return logger, func() { f.Close() }, nil
}
