package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/three-doors/internal/config"
	"github.com/tatianab/three-doors/internal/engine"
	"github.com/tatianab/three-doors/internal/loader"
)

type model struct {
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	ready     bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		engine:    eng,
		textInput: ti,
		gameLog:   gameStyle.Render(eng.Intro()) + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			logWidth := m.logWidth()
			m.gameLog += userStyle.Width(logWidth).Render("> "+line) + "\n\n"

			output, quit := m.engine.ProcessTurn(line)
			if output != "" {
				m.gameLog += gameStyle.Width(logWidth).Render(output) + "\n\n"
			}
			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			if quit {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "\n  Loading...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderPanel(),
	)

	help := helpStyle.Render("Commands: look, go, take, inventory, choose, quit.")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

// renderPanel draws the side panel: where the player is and what they
// carry.
func (m model) renderPanel() string {
	room := m.engine.CurrentRoom()

	content := titleStyle.Render("LOCATION") + "\n" + room.Name + "\n\n"

	content += titleStyle.Render("INVENTORY") + "\n"
	if m.engine.Inventory().Empty() {
		content += "(empty)"
	} else {
		for _, item := range m.engine.Inventory().List() {
			content += "- " + item.Name + "\n"
		}
	}

	panelWidth := int(float64(m.width) * 0.23)
	return panelStyle.Width(panelWidth).Height(m.viewport.Height).Render(content)
}

// Run drives an interactive session for an already-built engine.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start wires config, world data and engine together and runs the TUI.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	world, err := loader.LoadWorldFiles(cfg.ItemsPath, cfg.RoomsPath)
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	eng, err := engine.New(world.Rooms, world.Catalog, world.Start, cfg.MaxInventory)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	return Run(eng)
}
