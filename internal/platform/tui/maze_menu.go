package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labyrinth/internal/core"
)

// MazeMode is how a new maze is presented.
type MazeMode int

const (
	MazeModeWatch   MazeMode = iota // Animate the carving, then play
	MazeModeInstant                 // Start with the maze fully carved
)

var mazeModeLabels = []string{
	"Watch it carve",
	"Skip to the maze",
}

// MazeModeModel lets users choose whether to watch the maze being carved.
type MazeModeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	mode      MazeMode
	choosing  bool
	quitting  bool
	back      bool
}

// NewMazeModeModel creates a new maze mode selection model.
func NewMazeModeModel(width, height int) MazeModeModel {
	return MazeModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m MazeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MazeModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(mazeModeLabels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.mode = MazeMode(m.cursor)
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m MazeModeModel) View() string {
	if m.quitting || m.back || !m.choosing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("How should the maze appear?", m.width))
	b.WriteString("\n\n")

	for i, label := range mazeModeLabels {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen mode, or nil if still choosing.
func (m MazeModeModel) Selected() *MazeMode {
	if m.choosing {
		return nil
	}
	mode := m.mode
	return &mode
}

// IsQuitting returns true if user wants to quit.
func (m MazeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m MazeModeModel) WantsBack() bool {
	return m.back
}

// RunMazeModeSelector runs the maze mode selection.
// A nil mode means the user backed out or quit.
func RunMazeModeSelector(cfg core.RuntimeConfig) (*MazeMode, error) {
	p := tea.NewProgram(
		NewMazeModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MazeModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
