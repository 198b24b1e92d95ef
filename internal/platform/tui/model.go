package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/logging"
	"github.com/vovakirdan/brickrun/internal/registry"
	"github.com/vovakirdan/brickrun/internal/storage"
)

// RunStore keeps the history of finished runs.
type RunStore interface {
	SaveRun(mode string, runID uuid.UUID, score int) (uuid.UUID, error)
	TopRuns(mode string, limit int) ([]storage.RunEntry, error)
}

// fieldSizer is implemented by games that accept pointer input in world
// units.
type fieldSizer interface {
	FieldSize() (w, h float64)
}

// noticeSeconds is how long an event notice stays in the status line.
const noticeSeconds = 2

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  RunStore
	config core.RuntimeConfig
	logger *log.Logger
	keys   GameKeyMap
	help   help.Model

	frame core.InputFrame
	hold  holdState
	state core.GameState
	runID uuid.UUID

	notice      string
	noticeTicks int
	width       int

	embedded   bool // inside a SessionModel: back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. store may be nil.
func NewGameModel(game registry.Game, store RunStore, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		logger: logger.With("game", game.ID()),
		keys:   DefaultGameKeyMap(),
		help:   h,
		frame:  core.NewInputFrame(),
		hold:   newHoldState(cfg.TickRate),
		runID:  uuid.New(),
		width:  cfg.ScreenW,
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "mode", m.game.ScoreKey(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.press(action)
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}
	return m, nil
}

// handleMouse moves the paddle to the pointer column. A left click acts
// like the jump key.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if f, ok := m.game.(fieldSizer); ok {
		w, h := f.FieldSize()
		m.frame.SetPointer(core.FitViewport(m.screen, w, h, 0).WorldX(msg.X))
		m.hold.release()
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.frame.Set(core.ActionJump)
	}
	return m, nil
}

// handleResize only resizes the screen. The world is in fixed units so the
// session carries on.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.width = msg.Width
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.hold.apply(&m.frame)
	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	if m.noticeTicks > 0 {
		m.noticeTicks--
		if m.noticeTicks == 0 {
			m.notice = ""
		}
	}
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent turns a tick event into a status notice and saves finished
// runs.
func (m *GameModel) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventShieldUsed:
		m.setNotice("Shield absorbed the hit!")
	case core.EventPowerup:
		m.setNotice(fmt.Sprintf("Powerup: %s", e.Detail))
	case core.EventNewBest:
		m.setNotice(fmt.Sprintf("New best: %d", e.Score))
	case core.EventWonLevel:
		if e.Next != nil {
			m.setNotice(fmt.Sprintf("Level cleared! Next: level %d", e.Next.Level))
		} else {
			m.setNotice("Level cleared!")
		}
	case core.EventLost:
		m.setNotice(fmt.Sprintf("Game over. Final score %d", e.Score))
		m.saveRun(e.Score)
	}
}

func (m *GameModel) setNotice(text string) {
	m.notice = text
	m.noticeTicks = noticeSeconds * m.config.TickRate
}

// saveRun stores the finished run and starts a new run ID.
func (m *GameModel) saveRun(score int) {
	mode := m.game.ScoreKey()
	if m.store != nil {
		id, err := m.store.SaveRun(mode, m.runID, score)
		if err != nil {
			m.logger.Warn("could not save run", "mode", mode, "error", err)
		} else {
			m.logger.Info("run saved", "mode", mode, "run", id, "score", score)
		}
	}
	m.runID = uuid.New()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".brickrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.setNotice("Screenshot saved")
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and a status line.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var status string
	if m.notice != "" {
		status = noticeStyle.Render(m.notice)
	} else {
		status = helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	if m.width > 0 && lipgloss.Width(status) > m.width {
		status = lipgloss.NewStyle().MaxWidth(m.width).Render(status)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(status)
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, store RunStore, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
