package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slithergame/slither/internal/core"
)

// KeyMap defines the key bindings, with help text for the footer lines.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	NextField key.Binding
	PrevField key.Binding
	Select    key.Binding
	Toggle    key.Binding
	Pause     key.Binding
	Play      key.Binding
	Restart   key.Binding
	ToMenu    key.Binding
	Quit      key.Binding
	Terminate key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, WASD, and vim keys
// for movement, with single-letter commands.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first item"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last item"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next item"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev item"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ToMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Terminate: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ActionFor translates a key message to its semantic action.
func (k KeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Terminate):
		return core.ActionTerminate
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Home):
		return core.ActionHome
	case key.Matches(msg, k.End):
		return core.ActionEnd
	case key.Matches(msg, k.NextField):
		return core.ActionNextField
	case key.Matches(msg, k.PrevField):
		return core.ActionPrevField
	case key.Matches(msg, k.Select):
		return core.ActionSelect
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.ToMenu):
		return core.ActionToMenu
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
