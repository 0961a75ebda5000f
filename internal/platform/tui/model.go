// Package tui provides the Bubble Tea integration for the threes
// platform. It handles the terminal UI loop, input mapping, and game
// orchestration.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-threes/internal/storage"
	"github.com/vovakirdan/tui-threes/internal/threes"
)

// Model is the Bubble Tea model for playing a single game.
type Model struct {
	game      *threes.Game
	store     *storage.Store
	variantID string

	keys GameKeyMap
	help help.Model

	width  int
	height int

	moves      []threes.Direction
	replayable bool // catalyst use breaks the pure swipe log
	scoreSaved bool
	highScore  int
	quitting   bool

	// Catalyst cell selection
	selecting bool
	cursor    threes.Pos
	first     *threes.Pos
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *threes.Game, store *storage.Store, variantID string) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		store:      store,
		variantID:  variantID,
		keys:       DefaultGameKeyMap(),
		help:       h,
		replayable: true,
	}
	m.refreshHighScore()
	return m
}

func (m *Model) refreshHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(m.variantID); err == nil {
		m.highScore = high
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.game.Restart()
		m.moves = nil
		m.replayable = true
		m.scoreSaved = false
		m.selecting = false
		m.first = nil
		return m, nil
	}

	if m.selecting {
		return m.handleSelectKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Catalyst):
		if m.game.Config().Catalyst && m.game.Status() == threes.StatusPlaying {
			m.selecting = true
			m.cursor = threes.Pos{}
			m.first = nil
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.swipe(threes.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.swipe(threes.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.swipe(threes.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.swipe(threes.DirRight)
	}

	return m, nil
}

// swipe applies one move and records it for the replay log.
func (m Model) swipe(dir threes.Direction) (tea.Model, tea.Cmd) {
	if m.game.Move(dir) {
		m.moves = append(m.moves, dir)
	}
	m.maybeSaveResult()
	return m, nil
}

// handleSelectKey drives the catalyst cell cursor.
func (m Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.game.Config().Size

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.selecting = false
		m.first = nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor.Row < size-1 {
			m.cursor.Row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor.Col < size-1 {
			m.cursor.Col++
		}

	case key.Matches(msg, m.keys.Confirm):
		if m.first == nil {
			pick := m.cursor
			m.first = &pick
			break
		}
		if m.game.Catalyst(*m.first, m.cursor) {
			// The replay log only encodes swipes, so a catalyzed game
			// cannot be replayed from it.
			m.replayable = false
		}
		m.selecting = false
		m.first = nil
		m.maybeSaveResult()
	}

	return m, nil
}

// maybeSaveResult persists the score and replay once per finished game.
func (m *Model) maybeSaveResult() {
	if m.game.Status() != threes.StatusEnded || m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}

	score := m.game.Score()
	if score > 0 {
		//nolint:errcheck // Best-effort save, UI continues regardless
		m.store.SaveScore(m.variantID, score, int(m.game.MaxTile()), m.game.MoveCount())
	}
	if m.replayable && len(m.moves) > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveReplay(storage.ReplayRecord{
			VariantID: m.variantID,
			Seed:      m.game.Seed(),
			Moves:     threes.FormatMoves(m.moves),
			Score:     score,
			MaxTile:   int(m.game.MaxTile()),
		})
	}
	m.refreshHighScore()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program with the given model.
func Run(game *threes.Game, store *storage.Store, variantID string) error {
	model := NewModel(game, store, variantID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
