package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

// helpHeight is the number of rows kept under the board for the help line.
const helpHeight = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	clock    core.Clock
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	showHelp bool

	frame    core.InputFrame
	state    core.GameState
	quitting bool
}

// NewModel creates a model for g. store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, showHelp bool, logger *log.Logger) Model {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "memoris"})
	}
	m := Model{
		game:     g,
		store:    store,
		clock:    core.NewSystemClock(),
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
		showHelp: showHelp,
		frame:    core.NewInputFrame(),
		state:    g.State(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	g.SetScreenSize(cfg.ScreenW, m.boardHeight(cfg.ScreenH))
	return m
}

// WithClock replaces the clock the model reads each frame.
func (m Model) WithClock(c core.Clock) Model {
	m.clock = c
	return m
}

func (m Model) boardHeight(h int) int {
	if m.showHelp {
		h -= helpHeight
	}
	return core.Max(h, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.Apply(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		h := m.boardHeight(msg.Height)
		m.screen.Resize(msg.Width, h)
		m.game.SetScreenSize(msg.Width, h)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.ElapsedMilliseconds()
	res := m.game.Step(m.frame, now)
	m.state = res.State
	m.frame.Clear()

	if out, ok := m.game.TakeOutcome(); ok {
		m.saveOutcome(out)
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveOutcome(out game.Outcome) {
	m.logger.Debug("level finished", "level", out.LevelID, "won", out.Won, "elapsed", out.Elapsed)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(resultOf(out)); err != nil {
		m.logger.Warn("could not save result", "level", out.LevelID, "error", err)
	}
}

func resultOf(out game.Outcome) storage.Result {
	return storage.Result{
		LevelID: out.LevelID,
		Serie:   out.Serie,
		Won:     out.Won,
		Elapsed: out.Elapsed,
		Stars:   out.Stars,
		Lives:   out.Lives,
	}
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run plays g in the current terminal until the player quits.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, showHelp bool, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg, showHelp, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
