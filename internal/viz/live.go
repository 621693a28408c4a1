package viz

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"
	"github.com/guptarohit/asciigraph"

	"github.com/fabiodan/bouncy-colors/internal/config"
	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/sim"
)

const (
	canvasCols      = 60
	canvasRows      = 30
	historyCapacity = 120

	// Screen position of canvas cell (0, 0); matches canvasStyle padding.
	canvasOffsetX = 2
	canvasOffsetY = 1
)

var canvasStyle = lipgloss.NewStyle().Padding(canvasOffsetY, canvasOffsetX)

type TickMsg time.Time

// Model is the live view: it ticks a simulation at a fixed frame rate and
// lets the user recolour bodies with the mouse.
type Model struct {
	cfg      *config.Config
	sim      *sim.Simulation
	view     Viewport
	canvas   *Canvas
	theme    Theme
	interval time.Duration

	running  bool
	showHelp bool
	selected int
	status   string

	energyHistory  []float64
	contactHistory []float64
	totalContacts  int
	totalWallHits  int

	recording bool
	frames    []*image.Paletted
	gifPath   string
}

// NewModel places the bodies described by cfg. It fails with the
// configuration or placement error unchanged.
func NewModel(cfg *config.Config) (Model, error) {
	s, err := newSimulation(cfg)
	if err != nil {
		return Model{}, err
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return Model{
		cfg:            cfg,
		sim:            s,
		view:           NewViewport(s.Arena(), canvasCols, canvasRows),
		canvas:         NewCanvas(canvasCols, canvasRows),
		theme:          GetTheme(cfg.Theme),
		interval:       time.Second / time.Duration(fps),
		running:        true,
		selected:       -1,
		energyHistory:  make([]float64, 0, historyCapacity),
		contactHistory: make([]float64, 0, historyCapacity),
		gifPath:        "bouncy.gif",
	}, nil
}

func newSimulation(cfg *config.Config) (*sim.Simulation, error) {
	return sim.New(cfg.Params(), rand.New(rand.NewSource(cfg.Seed)))
}

// WithGIFPath sets where G recordings are written.
func (m Model) WithGIFPath(path string) Model {
	m.gifPath = path
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "tab":
			m.selectNext()
		case "enter":
			if m.selected >= 0 {
				m.cycle(m.selected)
			}
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X-canvasOffsetX, msg.Y-canvasOffsetY)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		if m.recording {
			m.draw()
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the simulation by one tick.
func (m *Model) step() {
	m.sim.Tick()
	f := m.sim.Snapshot()

	m.totalContacts += len(f.Contacts)
	m.totalWallHits += f.WallHits

	m.energyHistory = appendCapped(m.energyHistory, physics.TotalKineticEnergy(f.Bodies))
	m.contactHistory = appendCapped(m.contactHistory, float64(len(f.Contacts)))
}

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

// click recolours the body under a canvas cell.
func (m *Model) click(col, row int) {
	if !m.view.Inside(col, row) {
		return
	}
	p := m.view.CellToArena(col, row)
	i, ok := m.sim.LocateBodyAt(p.X, p.Y)
	log.Printf("click cell=(%d,%d) arena=(%.1f,%.1f) body=%d hit=%v", col, row, p.X, p.Y, i, ok)
	if !ok {
		m.status = fmt.Sprintf("no body at (%.0f, %.0f)", p.X, p.Y)
		return
	}
	m.selected = i
	m.cycle(i)
}

func (m *Model) cycle(i int) {
	v, err := m.sim.CycleVisualState(i)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("body %d -> colour %d", i, v)
}

func (m *Model) selectNext() {
	n := m.sim.Len()
	if n == 0 {
		return
	}
	m.selected = (m.selected + 1) % n
}

// reset re-places the bodies with the configured seed.
func (m *Model) reset() {
	s, err := newSimulation(m.cfg)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.sim = s
	m.selected = -1
	m.totalContacts, m.totalWallHits = 0, 0
	m.energyHistory = m.energyHistory[:0]
	m.contactHistory = m.contactHistory[:0]
	m.status = "reset"
}

// draw rasterises the arena outline and every body.
func (m *Model) draw() {
	m.canvas.Clear()

	a := m.sim.Arena()
	w, h := m.view.ToPixel(r2.Point{X: a.Width, Y: a.Height})
	m.canvas.DrawRect(0, 0, w, h)

	for i, b := range m.sim.Bodies() {
		x, y := m.view.ToPixel(b.Position)
		r := m.view.Length(b.Radius())
		tag := uint8(b.Visual) + 1
		m.canvas.FillCircle(x, y, r, tag)
		if i == m.selected {
			m.canvas.DrawCircle(x, y, r+2, tag)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.CanvasStyles()))
	c := m.theme.chrome()

	var s strings.Builder
	s.WriteString(c.title.Render(gradient("BOUNCY COLORS", m.theme.Primary, m.theme.Accent)) + "\n")

	status := c.running.Render("RUNNING")
	if !m.running {
		status = c.paused.Render("PAUSED")
	}
	if m.recording {
		status += " " + c.recording.Render(fmt.Sprintf("REC %d", len(m.frames)))
	}
	s.WriteString(status + "\n\n")

	f := m.sim.Snapshot()
	row := func(label, value string) {
		s.WriteString(c.label.Render(label) + c.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", f.Tick))
	row("Bodies", fmt.Sprintf("%d", len(f.Bodies)))
	row("Energy", fmt.Sprintf("%.2f", physics.TotalKineticEnergy(f.Bodies)))
	row("Contacts", fmt.Sprintf("%d", m.totalContacts))
	row("Wall hits", fmt.Sprintf("%d", m.totalWallHits))
	row("Theme", m.theme.Name)
	if m.selected >= 0 && m.selected < len(f.Bodies) {
		b := f.Bodies[m.selected]
		row("Selected", fmt.Sprintf("#%d (%.0f, %.0f)", m.selected, b.Position.X, b.Position.Y))
	}

	s.WriteString("\n" + m.legend() + "\n")

	if len(m.energyHistory) > 0 {
		s.WriteString("\n" + c.label.Width(7).Render("Energy") + c.trace(m.energyHistory, 30) + "\n")
	}
	if len(m.contactHistory) > 1 {
		chart := asciigraph.Plot(m.contactHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Contacts / tick"))
		s.WriteString("\n" + chart + "\n")
	}

	if m.status != "" {
		s.WriteString("\n" + c.note.Render(m.status) + "\n")
	}
	s.WriteString("\n" + m.theme.rule(36) + "\n")
	s.WriteString(c.hint.Render("SP:Pause N:Step R:Reset Q:Quit\nT:Theme  G:Record ?:Help\nClick, Tab+Enter: recolour"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, c.panel.Render(s.String()))
	if m.showHelp {
		return mainView + "\n" + helpText
	}
	return mainView
}

func (m Model) legend() string {
	parts := make([]string, physics.NumVisualStates)
	for v := 0; v < physics.NumVisualStates; v++ {
		style := lipgloss.NewStyle().Foreground(m.theme.Bodies[v])
		parts[v] = style.Render("●") + fmt.Sprintf(" %d", v)
	}
	return strings.Join(parts, "  ")
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  N        - Single step when paused  ║
║  R        - Re-place all bodies      ║
║  Click    - Cycle a body's colour    ║
║  Tab      - Select next body         ║
║  Enter    - Cycle selected colour    ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Ticks returns the number of ticks the current simulation has taken.
func (m Model) Ticks() int { return m.sim.Ticks() }

// Canvas draws the current state and returns the canvas.
func (m Model) Canvas() *Canvas {
	m.draw()
	return m.canvas
}
