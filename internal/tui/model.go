package tui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slithergame/slither/internal/app"
	"github.com/slithergame/slither/internal/core"
)

// Model is the Bubble Tea model. It feeds input to the state machine,
// schedules ticks while a game is running, and renders the active screen.
type Model struct {
	app    *app.App
	theme  Theme
	keys   KeyMap
	period time.Duration

	// gen invalidates in-flight ticks: it is bumped whenever ticking
	// starts or stops, and a TickMsg from an older generation is dropped.
	gen     uint64
	ticking bool

	width    int
	height   int
	quitting bool
}

// NewModel wraps the state machine for terminal display. If the app is
// already in a game (the play command skips the menu), ticking starts
// with Init.
func NewModel(a *app.App, theme Theme, period time.Duration) Model {
	m := Model{
		app:    a,
		theme:  theme,
		keys:   DefaultKeyMap(),
		period: period,
	}
	if a.State() == app.StatePlaying {
		m.gen = 1
		m.ticking = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tickCmd(m.gen, m.period)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		act := m.keys.ActionFor(msg)
		if act == core.ActionNone {
			return m, nil
		}
		return m.apply(m.app.HandleAction(act))

	case TickMsg:
		if msg.Gen != m.gen || !m.ticking {
			return m, nil
		}
		model, cmd := m.apply(m.app.Tick())
		next := model.(Model)
		if next.ticking && cmd == nil {
			cmd = tickCmd(next.gen, next.period)
		}
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BlurMsg:
		return m.apply(m.app.Blur())
	}

	return m, nil
}

// apply carries out a state machine command.
func (m Model) apply(cmd app.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case app.CmdQuit:
		m.quitting = true
		m.ticking = false
		return m, tea.Quit
	case app.CmdStartTicking:
		m.gen++
		m.ticking = true
		return m, tickCmd(m.gen, m.period)
	case app.CmdStopTicking:
		m.gen++
		m.ticking = false
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.app.State() {
	case app.StateMenu:
		content = m.viewMenu()
	case app.StatePlaying:
		content = m.viewBoard("")
	case app.StatePaused:
		content = m.viewPaused()
	case app.StateGameOver:
		content = m.viewGameOver()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("slither\n\n")
	for _, line := range menuLines(m.app.Menu().Rows(), m.theme) {
		b.WriteString(line)
		b.WriteRune('\n')
	}

	best := m.app.Best(m.app.Menu().Options())
	if best > 0 {
		b.WriteString(m.theme.styles[core.StyleKey].Render(
			"\nbest for these options: "+strconv.Itoa(best)) + "\n")
	}

	b.WriteString("\n" + m.helpLine(
		"↑/↓", "move", "←/→", "adjust", "enter", "select", "p", "play", "q", "quit"))
	m.appendNotices(&b)
	return b.String()
}

func (m Model) viewBoard(banner string) string {
	sess := m.app.Session()
	snap := sess.Snapshot()
	screen := drawBoard(snap, m.theme, m.app.Best(sess.Options()))

	var b strings.Builder
	b.WriteString(renderScreen(screen, m.theme))
	b.WriteRune('\n')
	if banner != "" {
		b.WriteString(banner)
		b.WriteRune('\n')
	}
	b.WriteString(m.helpLine("←↑↓→", "steer", "esc", "pause", "q", "quit"))
	m.appendNotices(&b)
	return b.String()
}

func (m Model) viewPaused() string {
	var b strings.Builder
	b.WriteString(m.viewBoard(""))
	b.WriteString("\n\n   paused\n\n")
	for _, line := range menuLines(m.app.PauseMenu().Rows(), m.theme) {
		b.WriteString("   " + line)
		b.WriteRune('\n')
	}
	return b.String()
}

func (m Model) viewGameOver() string {
	sess := m.app.Session()

	var banner string
	if sess.Won() {
		banner = "you win, the board is full"
	} else {
		banner = "game over"
	}
	if m.app.NewBest() {
		banner += "  *new best*"
	}
	banner += "\n" + m.helpLine("r", "restart", "m", "menu", "q", "quit")
	return m.viewBoard(banner)
}

// helpLine formats alternating key/description pairs for a footer.
func (m Model) helpLine(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts,
			m.theme.styles[core.StyleKey].Render(pairs[i])+" "+pairs[i+1])
	}
	return strings.Join(parts, "  ")
}

func (m Model) appendNotices(b *strings.Builder) {
	for _, n := range m.app.Notices() {
		b.WriteString("\n" + m.theme.styles[core.StyleKey].Render("! "+n))
	}
}

// Run starts the Bubble Tea program.
func Run(a *app.App, theme Theme, period time.Duration) error {
	p := tea.NewProgram(
		NewModel(a, theme, period),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
