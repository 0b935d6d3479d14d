// Package app holds the screen state machine: main menu, playing, paused,
// and game over. It is pure logic driven by actions and ticks; the tui
// package feeds it input and renders its state.
package app

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/slithergame/slither/internal/core"
	"github.com/slithergame/slither/internal/game"
	"github.com/slithergame/slither/internal/highscore"
)

// State identifies the active screen.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command tells the caller what the state machine needs from the outside
// world after handling an action or tick.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdStartTicking
	CmdStopTicking
)

// Persister stores high scores and last-used options. Failures are logged
// and surfaced as notices but never stop play.
type Persister interface {
	highscore.Saver
	SaveOptions(opts game.Options) error
}

// App is the application state machine.
type App struct {
	state   State
	menu    Menu
	pause   PauseMenu
	session *game.Session
	table   *highscore.Table
	persist Persister
	logger  *log.Logger
	notices []string
	quiet   bool
	newBest bool
	seedFn  func() int64
}

// New builds the state machine starting at the main menu. persist may be
// nil for a run without a database.
func New(opts game.Options, table *highscore.Table, persist Persister, logger *log.Logger) *App {
	if table == nil {
		table = highscore.NewTable()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		menu:    NewMenu(opts),
		table:   table,
		persist: persist,
		logger:  logger,
		seedFn:  func() int64 { return time.Now().UnixNano() },
	}
}

// State returns the active screen.
func (a *App) State() State { return a.state }

// Session returns the running session, nil while on the main menu.
func (a *App) Session() *game.Session { return a.session }

// Menu returns the main menu for rendering.
func (a *App) Menu() Menu { return a.menu }

// PauseMenu returns the pause overlay for rendering.
func (a *App) PauseMenu() PauseMenu { return a.pause }

// Best returns the recorded best score for the given options.
func (a *App) Best(opts game.Options) int { return a.table.Best(opts) }

// NewBest reports whether the last finished session set a new best.
func (a *App) NewBest() bool { return a.newBest }

// Notices returns pending warning lines for display.
func (a *App) Notices() []string { return a.notices }

// AddNotice queues a warning line for display.
func (a *App) AddNotice(msg string) { a.notices = append(a.notices, msg) }

// SetQuiet suppresses persistence-failure notices. Failures are still
// logged either way.
func (a *App) SetQuiet(quiet bool) { a.quiet = quiet }

// HandleAction feeds one input action into the state machine.
func (a *App) HandleAction(act core.Action) Command {
	if act == core.ActionTerminate {
		return CmdQuit
	}

	switch a.state {
	case StateMenu:
		return a.handleMenu(act)
	case StatePlaying:
		return a.handlePlaying(act)
	case StatePaused:
		return a.handlePaused(act)
	case StateGameOver:
		return a.handleGameOver(act)
	}
	return CmdNone
}

func (a *App) handleMenu(act core.Action) Command {
	switch a.menu.Handle(act) {
	case MenuPlay:
		a.startGame(a.menu.Options())
		return CmdStartTicking
	case MenuQuit:
		return CmdQuit
	}
	return CmdNone
}

func (a *App) handlePlaying(act core.Action) Command {
	if dir, ok := core.DirectionFor(act); ok {
		a.session.Queue(dir)
		return CmdNone
	}

	switch act {
	case core.ActionPause, core.ActionPlay:
		a.session.Pause()
		a.state = StatePaused
		a.pause = PauseMenu{}
		return CmdStopTicking
	case core.ActionQuit:
		return CmdQuit
	}
	return CmdNone
}

func (a *App) handlePaused(act core.Action) Command {
	switch a.pause.Handle(act) {
	case PauseResume:
		a.session.Resume()
		a.state = StatePlaying
		return CmdStartTicking
	case PauseRestart:
		a.session.Restart(a.seedFn())
		a.state = StatePlaying
		return CmdStartTicking
	case PauseMainMenu:
		a.toMenu()
	case PauseQuit:
		return CmdQuit
	}
	return CmdNone
}

func (a *App) handleGameOver(act core.Action) Command {
	switch act {
	case core.ActionRestart, core.ActionSelect, core.ActionPlay:
		a.startGame(a.session.Options())
		return CmdStartTicking
	case core.ActionToMenu, core.ActionPause:
		a.toMenu()
	case core.ActionQuit:
		return CmdQuit
	}
	return CmdNone
}

// Tick advances the running session by one step. Ticks arriving in any
// other state are stale and ignored.
func (a *App) Tick() Command {
	if a.state != StatePlaying {
		return CmdNone
	}

	a.session.OnTick()
	if a.session.Alive() {
		return CmdNone
	}

	a.finishGame()
	return CmdStopTicking
}

// Blur pauses a running game when the terminal loses focus.
func (a *App) Blur() Command {
	if a.state != StatePlaying {
		return CmdNone
	}
	a.session.Pause()
	a.state = StatePaused
	a.pause = PauseMenu{}
	return CmdStopTicking
}

// startGame persists the chosen options and opens a fresh session.
func (a *App) startGame(opts game.Options) {
	a.notices = nil
	a.newBest = false

	if a.persist != nil {
		if err := a.persist.SaveOptions(opts); err != nil {
			a.logger.Warn("could not save options", "error", err)
			if !a.quiet {
				a.AddNotice("options were not saved")
			}
		}
	}

	a.session = game.NewSession(opts, a.seedFn())
	a.state = StatePlaying
}

// finishGame records the score and moves to the game over screen.
func (a *App) finishGame() {
	a.state = StateGameOver

	opts := a.session.Options()
	score := a.session.Score()
	a.logger.Info("session over",
		"score", score,
		"ticks", a.session.Ticks(),
		"won", a.session.Won())

	a.newBest = a.table.Record(opts, score)
	if a.newBest && a.persist != nil {
		if err := a.persist.SaveBest(opts, score); err != nil {
			a.logger.Warn("could not save high score", "error", err)
			if !a.quiet {
				a.AddNotice("high score was not saved")
			}
		}
	}
}

// toMenu returns to the main menu, carrying over the session's options.
func (a *App) toMenu() {
	opts := a.menu.Options()
	if a.session != nil {
		opts = a.session.Options()
	}
	a.menu = NewMenu(opts)
	a.session = nil
	a.state = StateMenu
}
