package app

import (
	"fmt"

	"github.com/slithergame/slither/internal/core"
	"github.com/slithergame/slither/internal/game"
)

// MenuResult is what a menu action resolved to.
type MenuResult int

const (
	MenuNone MenuResult = iota
	MenuPlay
	MenuQuit
)

// Menu is the main menu: a Play button, one row per gameplay option, and a
// Quit button. The options edited here become the session options when
// Play is chosen.
type Menu struct {
	opts   game.Options
	cursor int
}

// Menu row indices, top to bottom.
const (
	menuRowPlay = iota
	menuRowWraparound
	menuRowObstacles
	menuRowFruits
	menuRowSize
	menuRowQuit
	menuRowCount
)

// NewMenu returns a menu editing the given options.
func NewMenu(opts game.Options) Menu {
	return Menu{opts: opts}
}

// Options returns the options as currently edited.
func (m Menu) Options() game.Options { return m.opts }

// Cursor returns the highlighted row index.
func (m Menu) Cursor() int { return m.cursor }

// Handle applies one action to the menu and reports what it resolved to.
func (m *Menu) Handle(a core.Action) MenuResult {
	switch a {
	case core.ActionUp, core.ActionPrevField:
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = menuRowCount - 1
		}

	case core.ActionDown, core.ActionNextField:
		m.cursor = (m.cursor + 1) % menuRowCount

	case core.ActionHome:
		m.cursor = 0

	case core.ActionEnd:
		m.cursor = menuRowCount - 1

	case core.ActionLeft:
		m.adjust(-1)

	case core.ActionRight:
		m.adjust(+1)

	case core.ActionSelect, core.ActionToggle:
		switch m.cursor {
		case menuRowPlay:
			if a == core.ActionSelect {
				return MenuPlay
			}
		case menuRowQuit:
			if a == core.ActionSelect {
				return MenuQuit
			}
		default:
			m.adjust(+1)
		}

	case core.ActionPlay:
		return MenuPlay

	case core.ActionQuit:
		return MenuQuit
	}

	return MenuNone
}

var menuSizes = []game.LevelSize{game.SizeSmall, game.SizeMedium, game.SizeLarge}

func sizeIndex(sz game.LevelSize) int {
	for i, s := range menuSizes {
		if s == sz {
			return i
		}
	}
	return 0
}

// adjust changes the option under the cursor. Boolean rows flip in either
// direction; the fruit counter and size clamp at their bounds.
func (m *Menu) adjust(delta int) {
	switch m.cursor {
	case menuRowWraparound:
		m.opts.Wraparound = !m.opts.Wraparound
	case menuRowObstacles:
		m.opts.Obstacles = !m.opts.Obstacles
	case menuRowFruits:
		m.opts.Fruits += delta
		if m.opts.Fruits < 1 {
			m.opts.Fruits = 1
		} else if m.opts.Fruits > game.MaxFruits {
			m.opts.Fruits = game.MaxFruits
		}
	case menuRowSize:
		i := sizeIndex(m.opts.Size) + delta
		if i < 0 {
			i = 0
		} else if i >= len(menuSizes) {
			i = len(menuSizes) - 1
		}
		m.opts.Size = menuSizes[i]
	}
}

// MenuRow describes one rendered menu line.
type MenuRow struct {
	Label    string
	Value    string // empty for plain buttons
	Selected bool
}

// Rows returns the menu lines in display order.
func (m Menu) Rows() []MenuRow {
	checkbox := func(v bool) string {
		if v {
			return "[✓]"
		}
		return "[ ]"
	}
	// Solid arrows mark the directions a spinner can still move; a hollow
	// arrow marks a bound.
	spinner := func(value string, canDec, canInc bool) string {
		left, right := "◀", "▶"
		if !canDec {
			left = "◁"
		}
		if !canInc {
			right = "▷"
		}
		return fmt.Sprintf("%s %s %s", left, value, right)
	}

	szIdx := sizeIndex(m.opts.Size)
	return []MenuRow{
		{Label: "Play", Selected: m.cursor == menuRowPlay},
		{Label: "Wraparound", Value: checkbox(m.opts.Wraparound), Selected: m.cursor == menuRowWraparound},
		{Label: "Obstacles", Value: checkbox(m.opts.Obstacles), Selected: m.cursor == menuRowObstacles},
		{Label: "Fruits", Value: spinner(fmt.Sprintf("%d", m.opts.Fruits), m.opts.Fruits > 1, m.opts.Fruits < game.MaxFruits), Selected: m.cursor == menuRowFruits},
		{Label: "Size", Value: spinner(m.opts.Size.String(), szIdx > 0, szIdx < len(menuSizes)-1), Selected: m.cursor == menuRowSize},
		{Label: "Quit", Selected: m.cursor == menuRowQuit},
	}
}

// PauseResult is what a pause menu action resolved to.
type PauseResult int

const (
	PauseNone PauseResult = iota
	PauseResume
	PauseRestart
	PauseMainMenu
	PauseQuit
)

// Pause menu entry indices.
const (
	pauseRowResume = iota
	pauseRowRestart
	pauseRowMainMenu
	pauseRowQuit
	pauseRowCount
)

var pauseLabels = [pauseRowCount]string{"Resume", "Restart", "Main menu", "Quit"}

// PauseMenu is the overlay shown while a game is suspended.
type PauseMenu struct {
	cursor int
}

// Cursor returns the highlighted entry index.
func (p PauseMenu) Cursor() int { return p.cursor }

// Rows returns the pause menu lines in display order.
func (p PauseMenu) Rows() []MenuRow {
	rows := make([]MenuRow, pauseRowCount)
	for i, label := range pauseLabels {
		rows[i] = MenuRow{Label: label, Selected: i == p.cursor}
	}
	return rows
}

// Handle applies one action to the pause menu.
func (p *PauseMenu) Handle(a core.Action) PauseResult {
	switch a {
	case core.ActionUp, core.ActionPrevField:
		if p.cursor > 0 {
			p.cursor--
		} else {
			p.cursor = pauseRowCount - 1
		}

	case core.ActionDown, core.ActionNextField:
		p.cursor = (p.cursor + 1) % pauseRowCount

	case core.ActionHome:
		p.cursor = 0

	case core.ActionEnd:
		p.cursor = pauseRowCount - 1

	case core.ActionSelect:
		switch p.cursor {
		case pauseRowResume:
			return PauseResume
		case pauseRowRestart:
			return PauseRestart
		case pauseRowMainMenu:
			return PauseMainMenu
		case pauseRowQuit:
			return PauseQuit
		}

	case core.ActionPause, core.ActionPlay:
		return PauseResume

	case core.ActionRestart:
		return PauseRestart

	case core.ActionToMenu:
		return PauseMainMenu

	case core.ActionQuit:
		return PauseQuit
	}

	return PauseNone
}
