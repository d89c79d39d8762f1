package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/bomber"
)

// BomberLevelModel lets users choose the starting level for Bomberman.
type BomberLevelModel struct {
	levels    []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	level     int // Chosen level (1-indexed), 0 while choosing
	quitting  bool
	back      bool
}

// NewBomberLevelModel creates a new level selection model.
func NewBomberLevelModel(width, height int) BomberLevelModel {
	return BomberLevelModel{
		levels:    bomber.LevelNames(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m BomberLevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BomberLevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BomberLevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.level = m.cursor + 1
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m BomberLevelModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B O M B E R M A N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	for i, name := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%2d. %s", cursor, i+1, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Level returns the chosen level (1-indexed), or 0 if none was chosen.
func (m BomberLevelModel) Level() int {
	return m.level
}

// IsQuitting returns true if user wants to quit.
func (m BomberLevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BomberLevelModel) WantsBack() bool {
	return m.back
}

// Done reports whether the selector has finished.
func (m BomberLevelModel) Done() bool {
	return m.level > 0 || m.quitting || m.back
}

// RunBomberLevelSelector runs the level selection and returns the chosen
// level, or 0 if the user backed out or quit.
func RunBomberLevelSelector(cfg core.RuntimeConfig) (int, error) {
	p := tea.NewProgram(
		NewBomberLevelModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("tui: level selector: %w", err)
	}

	m, ok := finalModel.(BomberLevelModel)
	if !ok {
		return 0, nil
	}
	return m.Level(), nil
}
