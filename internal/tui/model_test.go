package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slithergame/slither/internal/app"
	"github.com/slithergame/slither/internal/config"
	"github.com/slithergame/slither/internal/core"
	"github.com/slithergame/slither/internal/game"
	"github.com/slithergame/slither/internal/highscore"
)

func newTestModel() Model {
	opts := game.Options{Fruits: 1, Size: game.SizeSmall}
	a := app.New(opts, highscore.NewTable(), nil, nil)
	return NewModel(a, NewTheme(config.DefaultConfig().Theme), 200*time.Millisecond)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestPlayStartsTicking(t *testing.T) {
	m := newTestModel()
	if m.ticking {
		t.Fatal("model should not tick on the menu")
	}

	m, cmd := press(t, m, runeKey('p'))
	if !m.ticking {
		t.Fatal("play did not start ticking")
	}
	if cmd == nil {
		t.Fatal("play did not schedule a tick")
	}
}

func TestInitTicksWhenAlreadyPlaying(t *testing.T) {
	opts := game.Options{Fruits: 1, Size: game.SizeSmall}
	a := app.New(opts, highscore.NewTable(), nil, nil)
	a.HandleAction(core.ActionPlay)

	m := NewModel(a, NewTheme(config.DefaultConfig().Theme), 200*time.Millisecond)
	if !m.ticking {
		t.Fatal("model should tick for an in-progress game")
	}
	if m.Init() == nil {
		t.Fatal("Init did not schedule a tick")
	}
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('p'))

	next, cmd := m.Update(TickMsg{Gen: m.gen, Time: time.Now()})
	m = next.(Model)
	if got := m.app.Session().Ticks(); got != 1 {
		t.Fatalf("ticks = %d, want 1", got)
	}
	if cmd == nil {
		t.Fatal("tick did not reschedule")
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('p'))
	staleGen := m.gen

	// Pausing bumps the generation; a tick scheduled before the pause
	// must not advance the session.
	m, _ = press(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))
	if m.ticking {
		t.Fatal("pause did not stop ticking")
	}

	next, cmd := m.Update(TickMsg{Gen: staleGen, Time: time.Now()})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("stale tick rescheduled")
	}
	if got := m.app.Session().Ticks(); got != 0 {
		t.Fatalf("stale tick advanced the session to %d", got)
	}
}

func TestResumeRestartsTicking(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('p'))
	m, _ = press(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))

	m, cmd := press(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if !m.ticking || cmd == nil {
		t.Fatal("resume did not restart ticking")
	}
}

func TestBlurPausesTheGame(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('p'))

	next, _ := m.Update(tea.BlurMsg{})
	m = next.(Model)
	if m.ticking {
		t.Fatal("blur did not stop ticking")
	}
	if m.app.State() != app.StatePaused {
		t.Fatalf("state = %v, want paused", m.app.State())
	}
}

func TestCtrlCQuitsFromAnyScreen(t *testing.T) {
	m := newTestModel()
	m, cmd := press(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}))
	if cmd == nil {
		t.Fatal("ctrl+c on the menu did not quit")
	}
	if !m.quitting {
		t.Fatal("model not marked quitting")
	}
}

func TestMenuViewShowsOptions(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, want := range []string{"Play", "Wraparound", "Obstacles", "Fruits", "Size", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestBoardViewShowsScoreAndBorder(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, runeKey('p'))

	view := m.View()
	if !strings.Contains(view, "score 0") {
		t.Error("board view missing the score bar")
	}
	if !strings.Contains(view, "┌") {
		t.Error("board view missing the solid border")
	}
}

func TestWraparoundBoardUsesDottedBorder(t *testing.T) {
	opts := game.Options{Wraparound: true, Fruits: 1, Size: game.SizeSmall}
	a := app.New(opts, highscore.NewTable(), nil, nil)
	m := NewModel(a, NewTheme(config.DefaultConfig().Theme), 200*time.Millisecond)

	m, _ = press(t, m, runeKey('p'))
	view := m.View()
	if strings.Contains(view, "┌") {
		t.Error("wraparound board should not use the solid border")
	}
	if !strings.Contains(view, "·") {
		t.Error("wraparound board missing the dotted border")
	}
}
