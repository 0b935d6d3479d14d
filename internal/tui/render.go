package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slithergame/slither/internal/app"
	"github.com/slithergame/slither/internal/config"
	"github.com/slithergame/slither/internal/core"
	"github.com/slithergame/slither/internal/game"
)

// Theme holds the board glyphs and the lipgloss style per cell style.
type Theme struct {
	headNorth rune
	headSouth rune
	headEast  rune
	headWest  rune
	body      rune
	fruit     rune
	obstacle  rune
	collision rune

	styles map[core.StyleID]lipgloss.Style
}

// NewTheme builds a theme from the configured glyphs and colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		headNorth: config.Rune(cfg.HeadNorth, '^'),
		headSouth: config.Rune(cfg.HeadSouth, 'v'),
		headEast:  config.Rune(cfg.HeadEast, '>'),
		headWest:  config.Rune(cfg.HeadWest, '<'),
		body:      config.Rune(cfg.Body, '⚬'),
		fruit:     config.Rune(cfg.Fruit, '●'),
		obstacle:  config.Rune(cfg.Obstacle, '█'),
		collision: config.Rune(cfg.Collision, '×'),

		styles: map[core.StyleID]lipgloss.Style{
			core.StyleDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.BorderColor)),
			core.StyleSnake:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.SnakeColor)),
			core.StyleFruit:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.FruitColor)),
			core.StyleObstacle:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.ObstacleColor)),
			core.StyleCollision: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.FruitColor)).Bold(true),
			core.StyleKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.StyleScoreBar:  lipgloss.NewStyle().Reverse(true),
			core.StyleSelected:  lipgloss.NewStyle().Reverse(true),
		},
	}
}

// headRune returns the head glyph for the given heading.
func (t Theme) headRune(d core.Direction) rune {
	switch d {
	case core.North:
		return t.headNorth
	case core.South:
		return t.headSouth
	case core.East:
		return t.headEast
	default:
		return t.headWest
	}
}

// renderScreen converts a screen buffer to a styled string. Adjacent cells
// sharing a style are grouped to keep the ANSI escape count down.
func renderScreen(s *core.Screen, t Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := t.styles[start]
			if !ok {
				style = t.styles[core.StyleDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawBoard renders a level snapshot into a screen buffer: a score bar, a
// border (dotted when the level wraps), and the board contents. When the
// session is over the head is replaced by the collision glyph.
func drawBoard(snap game.Snapshot, t Theme, best int) *core.Screen {
	// One row for the score bar, plus the border.
	s := core.NewScreen(snap.Width+2, snap.Height+3)

	score := fmt.Sprintf(" score %d", snap.Score)
	bar := score + strings.Repeat(" ", maxInt(0, s.Width()-len(score)-len(fmt.Sprintf("best %d ", best)))) +
		fmt.Sprintf("best %d ", best)
	s.DrawStyled(0, 0, bar, core.StyleScoreBar)

	if snap.Wraparound {
		s.DrawDottedBox(0, 1, snap.Width+2, snap.Height+2)
	} else {
		s.DrawBox(0, 1, snap.Width+2, snap.Height+2)
	}

	// Cell (x, y) of the level maps to (x+1, y+2) on screen.
	for _, c := range snap.Obstacles {
		s.SetCell(c.X+1, c.Y+2, t.obstacle, core.StyleObstacle)
	}
	for _, c := range snap.Fruits {
		s.SetCell(c.X+1, c.Y+2, t.fruit, core.StyleFruit)
	}
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		c := snap.Snake[i]
		s.SetCell(c.X+1, c.Y+2, t.body, core.StyleSnake)
	}
	if len(snap.Snake) > 0 {
		head := snap.Snake[0]
		if snap.Alive || snap.Won {
			s.SetCell(head.X+1, head.Y+2, t.headRune(snap.HeadDir), core.StyleSnake)
		} else {
			s.SetCell(head.X+1, head.Y+2, t.collision, core.StyleCollision)
		}
	}

	return s
}

// menuLines renders menu rows into aligned, styled lines.
func menuLines(rows []app.MenuRow, t Theme) []string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		text := row.Label
		if row.Value != "" {
			text = fmt.Sprintf("%-12s %s", row.Label, row.Value)
		}
		cursor := "  "
		if row.Selected {
			cursor = "> "
			text = t.styles[core.StyleSelected].Render(text)
		}
		lines[i] = cursor + text
	}
	return lines
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
