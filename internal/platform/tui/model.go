package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// statusLines is the number of terminal rows below the playfield.
const statusLines = 2

// RoundRecord describes one finished round.
type RoundRecord struct {
	Round    int
	Score    int
	Duration time.Duration
}

// Options configures the game model.
type Options struct {
	Runtime   core.RuntimeConfig
	BirdColor core.Color
	Listener  core.Listener // Receives session events, usually the audio player
	Logger    *log.Logger
}

// Model is the Bubble Tea model that runs a game session.
type Model struct {
	session    *flappy.Session
	screen     *core.Screen
	renderer   flappy.Renderer
	keys       KeyMap
	help       help.Model
	listener   core.Listener
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	rounds     []RoundRecord
	roundTime  float64 // Simulated seconds in the current round
	quitting   bool
}

// NewModel creates a model for an existing session.
func NewModel(session *flappy.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session:    session,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-statusLines),
		renderer:   flappy.NewRenderer(opts.BirdColor),
		keys:       DefaultKeyMap(),
		help:       h,
		listener:   opts.Listener,
		logger:     logger,
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize resizes the screen. The world is scaled to fit, so the
// session keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-statusLines)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the session by one fixed tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if handler, ok := m.listener.(flappy.ActionHandler); ok {
		for _, a := range []core.Action{core.ActionVolumeUp, core.ActionVolumeDown, core.ActionMute} {
			if m.inputFrame.Has(a) {
				handler.HandleAction(a)
			}
		}
	}

	dt := m.config.TickSeconds()
	result := m.session.Step(dt, m.inputFrame)
	m.gameState = result.State
	core.Dispatch(m.listener, result.Events)

	if !result.State.Paused {
		m.roundTime += dt
	}
	if result.Crashed {
		last := m.session.Snapshot().Last
		m.rounds = append(m.rounds, RoundRecord{
			Round:    result.State.Round - 1,
			Score:    last,
			Duration: time.Duration(m.roundTime * float64(time.Second)),
		})
		m.logger.Info("round over", "round", result.State.Round-1, "score", last, "best", result.State.Best)
		m.roundTime = 0
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.session.Snapshot())
	vol, _ := m.listener.(VolumeReporter)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		renderStatus(m.gameState, vol),
		statusStyle.Render(m.help.View(m.keys)),
	)
}

// Rounds returns the rounds finished so far.
func (m Model) Rounds() []RoundRecord {
	return m.rounds
}

// Run plays session in the terminal until the player quits and returns
// the finished rounds.
func Run(session *flappy.Session, opts Options) ([]RoundRecord, error) {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Rounds(), nil
	}
	return nil, nil
}
