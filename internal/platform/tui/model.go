package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/railgrid/railgrid/internal/config"
	"github.com/railgrid/railgrid/internal/core"
	"github.com/railgrid/railgrid/internal/scenario"
	"github.com/railgrid/railgrid/internal/sim"
	"github.com/railgrid/railgrid/internal/storage"
)

// hudRows and helpRows are screen rows reserved above and below the world view.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model for running the simulator.
type Model struct {
	world    *sim.World
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	simCfg   config.Config
	scenName string

	keys KeyMap
	help help.Model

	input      core.InputFrame
	mode       EditMode
	mouseHeld  bool
	mouseX     int
	mouseY     int
	viewX      int
	viewZ      int
	paused     bool
	quitting   bool
	statsSaved bool
	startedAt  time.Time
}

// NewModel creates a new Bubble Tea model with the named scenario built.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, simCfg config.Config, scenName string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		world:     sim.NewWorld(simCfg.Grid.Side, simCfg.Trains.Capacity, cfg.TickRate),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-hudRows-helpRows),
		store:     store,
		config:    cfg,
		simCfg:    simCfg,
		scenName:  scenName,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     core.NewInputFrame(),
		mode:      ModeBuild,
		startedAt: time.Now(),
	}
	m.world.SetSpeeds(sim.Speeds{
		Drive:  simCfg.Trains.DriveSpeed,
		Load:   simCfg.Trains.LoadSpeed,
		Unload: simCfg.Trains.UnloadSpeed,
	})
	m.buildScenario()
	return m
}

// buildScenario populates the world from the configured scenario.
func (m *Model) buildScenario() {
	rng := rand.New(rand.NewSource(m.config.Seed))
	//nolint:errcheck // Scenario existence is validated by the CLI
	scenario.Build(m.scenName, m.world, rng)
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
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSessionStats()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PanMode):
		m.mode = ModePan
	case key.Matches(msg, m.keys.BuildMode):
		m.mode = ModeBuild
	case key.Matches(msg, m.keys.EraseMode):
		m.mode = ModeErase
	case key.Matches(msg, m.keys.SwitchMode):
		m.mode = ModeSwitch

	case key.Matches(msg, m.keys.Up):
		m.viewZ = m.clampView(m.viewZ-1, m.visibleRows())
	case key.Matches(msg, m.keys.Down):
		m.viewZ = m.clampView(m.viewZ+1, m.visibleRows())
	case key.Matches(msg, m.keys.Left):
		m.viewX = m.clampView(m.viewX-1, m.visibleCols())
	case key.Matches(msg, m.keys.Right):
		m.viewX = m.clampView(m.viewX+1, m.visibleCols())

	case key.Matches(msg, m.keys.Pause):
		m.input.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Reset):
		m.input.Set(core.ActionReset)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	}

	return m, nil
}

// handleMouse tracks the pointer and button state for the active tool.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.mouseHeld = true
			if m.mode == ModeSwitch {
				m.input.Set(core.ActionToggleSwitch)
				m.input.Pointer = m.worldPointer()
			}
		}
	case tea.MouseActionRelease:
		m.mouseHeld = false
	}

	return m, nil
}

// handleResize adjusts the screen buffer; the world itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-hudRows-helpRows)
	m.help.Width = msg.Width
	m.viewX = m.clampView(m.viewX, m.visibleCols())
	m.viewZ = m.clampView(m.viewZ, m.visibleRows())
	return m, nil
}

// handleTick assembles the frame input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}
	if m.input.Has(core.ActionReset) {
		m.buildScenario()
		m.paused = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.paused {
		if m.mouseHeld {
			switch m.mode {
			case ModeBuild:
				m.input.Set(core.ActionPaint)
				m.input.Pointer = m.worldPointer()
			case ModeErase:
				m.input.Set(core.ActionBulldoze)
				m.input.Pointer = m.worldPointer()
			}
		}
		m.world.Step(m.input)
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// worldPointer converts the last mouse position to world coordinates.
// Each grid cell occupies a cellSpan x cellSpan block of characters, so a
// single character resolves to one sector.
func (m Model) worldPointer() core.Pointer {
	sy := m.mouseY - hudRows
	if m.mouseX < 0 || sy < 0 {
		return core.Pointer{}
	}
	return core.Pointer{
		X:     float64(m.viewX) + (float64(m.mouseX)+0.5)/cellSpan,
		Z:     float64(m.viewZ) + (float64(sy)+0.5)/cellSpan,
		Valid: true,
	}
}

// visibleCols returns how many grid columns fit on screen.
func (m Model) visibleCols() int {
	return m.screen.Width() / cellSpan
}

// visibleRows returns how many grid rows fit on screen.
func (m Model) visibleRows() int {
	return m.screen.Height() / cellSpan
}

// clampView keeps a viewport origin inside the grid.
func (m Model) clampView(v, visible int) int {
	max := m.world.Grid.Side - visible
	if max < 0 {
		max = 0
	}
	return core.Clamp(v, 0, max)
}

// saveSessionStats persists the session outcome once.
func (m *Model) saveSessionStats() {
	if m.statsSaved || m.store == nil {
		return
	}
	st := m.world.Status()
	//nolint:errcheck // Best-effort save, quitting regardless
	m.store.SaveSession(storage.Session{
		Scenario:    m.scenName,
		Ticks:       st.Tick,
		Painted:     st.Painted,
		Bulldozed:   st.Bulldozed,
		BlockEvents: st.BlockEvents,
		Duration:    int(time.Since(m.startedAt).Seconds()),
	})
	m.statsSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderWorld()

	dir := filepath.Join(os.Getenv("HOME"), ".railgrid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scenName, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderWorld draws the world into the screen buffer.
func (m *Model) renderWorld() {
	m.screen.Clear()
	drawGrid(m.screen, m.world.Grid, m.viewX, m.viewZ)
	drawTrains(m.screen, m.world, m.viewX, m.viewZ)
}

// hudLine formats the single status row above the world view.
func (m Model) hudLine() string {
	st := m.world.Status()
	state := "RUN"
	if m.paused {
		state = "PAUSE"
	}
	line := fmt.Sprintf(" %s | %s | %s | tick %d | trains %d (%d blocked) | painted %d | dozed %d",
		m.scenName, state, m.mode, st.Tick, st.Trains, st.Blocked, st.Painted, st.Bulldozed)

	if p := m.worldPointer(); p.Valid {
		cx, cz := int(p.X), int(p.Z)
		if cx >= 0 && cx < m.world.Grid.Side && cz >= 0 && cz < m.world.Grid.Side {
			line += fmt.Sprintf(" | cell %d,%d", cx, cz)
		}
	}
	return line
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderWorld()
	return m.hudLine() + "\n" + RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local play session.
func Run(store *storage.Store, cfg core.RuntimeConfig, simCfg config.Config, scenName string) error {
	model := NewModel(store, cfg, simCfg, scenName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Track the pointer between clicks too
	)

	_, err := p.Run()
	return err
}
