package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Settings are the options the start menu edits.
type Settings struct {
	Difficulty config.DifficultyPreset
	BirdColor  string
	Volume     float64
	Muted      bool
}

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceResults
	ChoiceQuit
)

// menuItem indexes the menu rows.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemBirdColor
	itemVolume
	itemResults
	itemQuit
	itemCount
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	settings   Settings
	hasResults bool
	cursor     menuItem
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	choice     MenuChoice
}

// NewMenuModel creates a menu starting from the given settings.
func NewMenuModel(settings Settings, hasResults bool, cfg core.RuntimeConfig) MenuModel {
	if settings.Difficulty == "" {
		settings.Difficulty = config.DifficultyMedium
	}
	if _, ok := core.BirdColorByName(settings.BirdColor); !ok {
		settings.BirdColor = core.BirdColors[0].Name
	}
	return MenuModel{
		settings:   settings,
		hasResults: hasResults,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = m.step(-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = m.step(1)

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case itemPlay:
			m.choice = ChoicePlay
			return m, tea.Quit
		case itemResults:
			m.choice = ChoiceResults
			return m, tea.Quit
		case itemQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// step moves the cursor, skipping the results row when there are none.
func (m MenuModel) step(dir int) menuItem {
	next := int(m.cursor)
	for {
		next = (next + dir + int(itemCount)) % int(itemCount)
		if menuItem(next) != itemResults || m.hasResults {
			return menuItem(next)
		}
	}
}

// adjust cycles the value of the setting under the cursor.
func (m *MenuModel) adjust(dir int) {
	switch m.cursor {
	case itemDifficulty:
		presets := config.Presets()
		i := 0
		for j, p := range presets {
			if p.Name == m.settings.Difficulty {
				i = j
			}
		}
		m.settings.Difficulty = presets[(i+dir+len(presets))%len(presets)].Name

	case itemBirdColor:
		i := 0
		for j, c := range core.BirdColors {
			if c.Name == m.settings.BirdColor {
				i = j
			}
		}
		n := len(core.BirdColors)
		m.settings.BirdColor = core.BirdColors[(i+dir+n)%n].Name

	case itemVolume:
		if m.settings.Muted {
			m.settings.Muted = false
			return
		}
		steps := core.Clamp(int(m.settings.Volume*10+0.5)+dir, 0, 10)
		m.settings.Volume = float64(steps) / 10
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("F L A P P Y", m.width)))
	b.WriteString("\n\n")

	for i := itemPlay; i < itemCount; i++ {
		if i == itemResults && !m.hasResults {
			continue
		}
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(centerText(style.Render(cursor+m.label(i)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if p, ok := config.PresetFor(m.settings.Difficulty); ok {
		b.WriteString(dimStyle.Render(centerText(p.Description, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// label returns the text of a menu row.
func (m MenuModel) label(i menuItem) string {
	switch i {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.settings.Difficulty)
	case itemBirdColor:
		c, _ := core.BirdColorByName(m.settings.BirdColor)
		return fmt.Sprintf("Bird: < %s >", colorStyle(c).Render(m.settings.BirdColor))
	case itemVolume:
		if m.settings.Muted {
			return "Volume: < muted >"
		}
		return fmt.Sprintf("Volume: < %d%% >", int(m.settings.Volume*100+0.5))
	case itemResults:
		return "Session results"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// Settings returns the edited settings.
func (m MenuModel) Settings() Settings {
	return m.settings
}

// Choice returns what the player picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice   MenuChoice
	Settings Settings
	Config   core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(settings Settings, hasResults bool, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(settings, hasResults, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Settings: settings, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Settings: settings, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:   m.Choice(),
		Settings: m.Settings(),
		Config:   m.Config(),
	}
	if result.Choice == ChoiceNone {
		result.Choice = ChoiceQuit
	}
	return result, nil
}
