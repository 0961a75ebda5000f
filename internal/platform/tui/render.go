package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-threes/internal/threes"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("240"))

	cursorBorderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// tileStyle builds the style for a non-empty tile from its palette color.
func tileStyle(t threes.Tile) lipgloss.Style {
	fg := lipgloss.Color("235")
	if t.Level() < 2 {
		// Dark shades need a light foreground
		fg = lipgloss.Color("255")
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(t.Hex())).
		Foreground(fg).
		Bold(true)
}

// tileContent renders the two-line face of a tile: label plus tier dots.
func tileContent(t threes.Tile) string {
	if t == threes.Empty {
		return "·"
	}
	return t.Label() + "\n" + strings.Repeat("•", t.Dots())
}

// renderTile renders one cell, marking the catalyst cursor and first pick.
func (m Model) renderTile(p threes.Pos, t threes.Tile) string {
	style := emptyTileStyle
	if t != threes.Empty {
		style = tileStyle(t)
	}
	if m.selecting {
		if m.first != nil && p == *m.first {
			style = style.Foreground(lipgloss.Color("229")).Underline(true)
		} else if p == m.cursor {
			style = style.Reverse(true)
		}
	}
	return style.Render(tileContent(t))
}

// renderBoard renders the grid of tiles.
func (m Model) renderBoard() string {
	grid := m.game.Grid()
	rows := make([]string, len(grid))
	for r, row := range grid {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = m.renderTile(threes.Pos{Row: r, Col: c}, threes.Tile(v))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	board := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(board)
}

// renderQueue renders the upcoming tiles.
func (m Model) renderQueue() string {
	queue := m.game.Queue()
	parts := make([]string, 0, len(queue)+1)
	parts = append(parts, dimStyle.Render("next:"))
	for _, t := range queue {
		parts = append(parts, lipgloss.NewStyle().
			Background(lipgloss.Color(t.Hex())).
			Foreground(lipgloss.Color("235")).
			Padding(0, 1).
			Render(t.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderHUD renders the score line above the board.
func (m Model) renderHUD() string {
	score := hudStyle.Render(fmt.Sprintf("Score %d", m.game.Score()))
	high := dimStyle.Render(fmt.Sprintf("Best %d", m.highScore))
	moves := dimStyle.Render(fmt.Sprintf("Moves %d", m.game.MoveCount()))
	return lipgloss.JoinHorizontal(lipgloss.Center, score, "   ", high, "   ", moves)
}

// render assembles the full game view.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("THREES (" + m.variantID + ")"))
	b.WriteString("\n\n")
	b.WriteString(m.renderHUD())
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderQueue())
	b.WriteString("\n")

	if m.selecting {
		hint := "pick the source cell"
		if m.first != nil {
			hint = "pick the target cell"
		}
		b.WriteString(cursorBorderStyle.Render("catalyst: " + hint))
		b.WriteString("\n")
	}

	if m.game.Status() == threes.StatusEnded {
		over := overlayStyle.Render(fmt.Sprintf(
			"GAME OVER\nScore %d · Max tile %s\nPress R to restart",
			m.game.Score(), m.game.MaxTile().Label(),
		))
		b.WriteString("\n")
		b.WriteString(over)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	out := b.String()
	if m.width > 0 {
		out = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
	}
	return out
}
