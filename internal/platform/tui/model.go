package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drift/internal/core"
	"github.com/vovakirdan/tui-drift/internal/sim"
)

// Rows reserved around the grid: HUD, frame and help footer.
const (
	hudRows    = 2
	frameRows  = 2
	footerRows = 1
)

// Options tune the terminal front end.
type Options struct {
	// Fit resizes the grid to fill the terminal on every window resize.
	Fit bool
	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.drift/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives a simulation.
type Model struct {
	sim        *sim.Simulation
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a model for s. The simulation must already be Reset.
func NewModel(s *sim.Simulation, opts Options, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := s.Config()
	h := help.New()
	h.ShowAll = false

	return Model{
		sim:        s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Interval)
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width

	if m.opts.Fit {
		rows, columns := FitGrid(msg.Width, msg.Height)
		g := m.sim.Grid()
		if rows != g.Rows() || columns != g.Columns() {
			if err := m.sim.Resize(rows, columns); err != nil {
				m.logger.Warn("grid resize failed", "rows", rows, "columns", columns, "err", err)
			}
		}
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sim.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.Interval)
}

// FitGrid returns the largest grid that renders with square two-column
// cells on a terminal of the given size, never smaller than 1x1.
func FitGrid(width, height int) (rows, columns int) {
	rows = max(height-hudRows-frameRows-footerRows, 1)
	columns = max((width-2)/2, 1)
	return rows, columns
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.sim.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".drift", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	st := m.sim.State()
	filename := fmt.Sprintf("drift_%s_t%d.txt", time.Now().Format("20060102_150405"), st.Tick)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program for s and blocks until the user quits.
func Run(s *sim.Simulation, opts Options, logger *log.Logger) error {
	model := NewModel(s, opts, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
