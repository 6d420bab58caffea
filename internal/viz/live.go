package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600

	// canvasStyle padding, needed to map mouse cells back to the canvas.
	padTop  = 1
	padLeft = 2
)

type TickMsg time.Time

// Live is the interactive frame driver: one tick per display refresh
// steps the store when running, mouse clicks spawn satellites, keys
// control pause, reset, and time scale.
type Live struct {
	engine *orbit.Engine
	store  *orbit.Store
	cfg    *config.Config

	canvas    *Canvas
	timeScale float64
	simTime   float64
	running   bool
	showHelp  bool

	energyHistory []float64
}

// NewLive builds the live model from a configuration, pre-spawning any
// configured satellites.
func NewLive(cfg *config.Config, fallbackSeed int64) Live {
	engine := cfg.Engine(fallbackSeed)
	store := orbit.NewStore(engine, cfg.Viewport.Width, cfg.Viewport.Height)
	for _, b := range cfg.InitialState(engine).Bodies[1:] {
		// Validation cannot fail here: these came through SeedOrbit.
		_ = store.Spawn(b)
	}
	return Live{
		engine:        engine,
		store:         store,
		cfg:           cfg,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		timeScale:     cfg.TimeScale,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

// Run starts the interactive program. Mouse reporting is required for
// click-to-spawn.
func Run(cfg *config.Config, fallbackSeed int64) error {
	p := tea.NewProgram(NewLive(cfg, fallbackSeed), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

func (m Live) tick() tea.Cmd {
	fps := m.cfg.FrameRate
	if fps <= 0 {
		fps = config.DefaultFrameRate
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.adjustTimeScale(1.25)
		case "-", "_":
			m.adjustTimeScale(0.8)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.spawnAtCell(msg.X, msg.Y)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Live) step() {
	m.store.Step(m.timeScale)
	m.simTime += m.engine.BaseTimeStep * m.timeScale

	m.energyHistory = append(m.energyHistory, m.engine.Energy(m.store.Snapshot()))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Live) reset() {
	m.store.Reset(m.cfg.Viewport.Width, m.cfg.Viewport.Height)
	m.simTime = 0
	m.timeScale = m.cfg.TimeScale
	m.energyHistory = m.energyHistory[:0]
}

func (m *Live) adjustTimeScale(factor float64) {
	ts := m.timeScale * factor
	if ts < m.engine.MinTimeScale {
		ts = m.engine.MinTimeScale
	}
	if ts > m.engine.MaxTimeScale {
		ts = m.engine.MaxTimeScale
	}
	m.timeScale = ts
}

// spawnAtCell maps a terminal cell to simulation space and spawns there.
// Clicks outside the canvas (or exactly on the anchor center) do nothing.
func (m *Live) spawnAtCell(cellX, cellY int) {
	subX := (cellX - padLeft) * 2
	subY := (cellY - padTop) * 4
	if subX < 0 || subY < 0 || subX >= m.canvas.Width*2 || subY >= m.canvas.Height*4 {
		return
	}
	proj := NewProjection(m.canvas, m.cfg.Viewport.Width, m.cfg.Viewport.Height)
	x, y := proj.ToSim(subX, subY)
	m.store.SpawnAt(x, y)
}

func (m Live) View() string {
	snap := m.store.Snapshot()

	m.canvas.Clear()
	DrawState(m.canvas, snap)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITLAB") + "\n")
	if m.running {
		s.WriteString(statusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(statusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.simTime)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.store.Len())) + "\n")
	s.WriteString(labelStyle.Render("Time scale") + valueStyle.Render(fmt.Sprintf("%.2fx", m.timeScale)) + "\n")

	if r := m.engine.MeanOrbitalRadius(snap); !math.IsNaN(r) {
		s.WriteString(labelStyle.Render("Mean radius") + valueStyle.Render(fmt.Sprintf("%.1f", r)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nClick:Spawn SP:Pause R:Reset\n+/-:Time scale ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD & MOUSE            ║
╠══════════════════════════════════════╣
║  Click    - Spawn orbiting body      ║
║  Space    - Pause/Resume             ║
║  R        - Reset to anchor only     ║
║  + / -    - Adjust time scale        ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
