package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-shooter/internal/core"
	"github.com/vovakirdan/tilt-shooter/internal/games/shooter"
)

// Model is the Bubble Tea model for a shooter session.
// All game mutation happens inside Update, so timers, keys and rendering
// never race on game state.
type Model struct {
	game     *shooter.Game
	screen   *core.Screen
	schedule *Schedule
	config   core.RuntimeConfig
	sensor   TiltSensor
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	paused   bool
	gameOver bool
	quitting bool
}

// NewModel creates a model for the given game. A nil logger discards output.
func NewModel(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameCfg := game.Config()
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		schedule: NewSchedule(gameCfg.Timing),
		config:   cfg,
		sensor:   NewTiltSensor(gameCfg),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
}

// Init resets the game and starts the timers.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.Title(), "seed", m.config.Seed)
	return m.schedule.StartAll()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RepeatMsg:
		return m.handleRepeat(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.schedule.StopAll()
		m.logger.Info("quit", "score", m.game.State().Score)
		return m, tea.Quit

	case core.ActionTiltLeft:
		m.sensor.Nudge(-1)
	case core.ActionTiltRight:
		m.sensor.Nudge(1)
	case core.ActionLevel:
		m.sensor.Level()

	case core.ActionFire:
		if !m.paused {
			m.game.Fire()
		}

	case core.ActionRestart:
		if m.gameOver {
			return m.restart()
		}

	case core.ActionPause:
		if m.gameOver {
			return m, nil
		}
		m.paused = !m.paused
		if m.paused {
			m.schedule.Suspend()
			return m, nil
		}
		return m, m.schedule.Resume()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleRepeat applies one timer firing to the game.
func (m Model) handleRepeat(msg RepeatMsg) (tea.Model, tea.Cmd) {
	fired, next := m.schedule.Route(msg)
	if !fired {
		return m, nil
	}

	switch msg.Kind {
	case TimerTick:
		result := m.game.Tick()
		if result.State.GameOver && !m.gameOver {
			m.gameOver = true
			m.schedule.Suspend()
			m.logger.Info("game over", "score", result.State.Score)
			return m, nil
		}
	case TimerSpawn:
		m.game.Spawn()
	case TimerSensor:
		if !m.paused {
			m.game.Tilt(m.sensor.Sample())
		}
	}

	return m, next
}

// restart begins a new game with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.sensor.Level()
	m.gameOver = false
	m.paused = false
	m.logger.Info("game restarted", "seed", m.config.Seed)
	return m, m.schedule.Resume()
}

// GameOver reports whether the session is showing the game-over screen.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := statusLine(m.sensor.Reading(), m.sensor.MaxTilt(), m.paused)
	footer := m.help.View(m.keys)
	reserved := lipgloss.Height(status) + lipgloss.Height(footer)

	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-reserved, 1))
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), status, footer)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *shooter.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
