package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fabiodan/bouncy-colors/internal/config"
)

var (
	menuTheme = GetTheme(config.DefaultTheme)

	heading = lipgloss.NewStyle().Foreground(menuTheme.Primary).Bold(true)
	plain   = lipgloss.NewStyle().Foreground(menuTheme.Text)
	faint   = lipgloss.NewStyle().Foreground(menuTheme.Muted)
	marked  = lipgloss.NewStyle().Foreground(menuTheme.Accent)
	failure = lipgloss.NewStyle().Foreground(menuTheme.Error)
)

var presetInfo = map[string]string{
	"classic": "fifteen bodies, default arena",
	"sparse":  "a handful of slow bodies",
	"crowded": "dense packing, many contacts",
	"giants":  "few large bodies",
	"pinball": "tall arena, fast small bodies",
}

const (
	stateMenu = iota
	stateConfig
	stateSim
)

// param is one editable field of the config screen.
type param struct {
	name string
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

var params = []param{
	{"bodies", func(c *config.Config) float64 { return float64(c.Bodies) }, func(c *config.Config, v float64) { c.Bodies = int(v) }},
	{"width", func(c *config.Config) float64 { return c.Width }, func(c *config.Config, v float64) { c.Width = v }},
	{"height", func(c *config.Config) float64 { return c.Height }, func(c *config.Config, v float64) { c.Height = v }},
	{"radius", func(c *config.Config) float64 { return c.Radius }, func(c *config.Config, v float64) { c.Radius = v }},
	{"speed", func(c *config.Config) float64 { return c.Speed }, func(c *config.Config, v float64) { c.Speed = v }},
	{"tolerance", func(c *config.Config) float64 { return c.Tolerance }, func(c *config.Config, v float64) { c.Tolerance = v }},
	{"seed", func(c *config.Config) float64 { return float64(c.Seed) }, func(c *config.Config, v float64) { c.Seed = int64(v) }},
}

type model struct {
	state, cursor int
	presets       []string
	selected      string
	cfg           *config.Config
	paramCursor   int
	editing       bool
	editBuf       string
	err           string
	liveModel     Model
}

// NewInteractiveApp returns a preset picker that launches the live view.
func NewInteractiveApp() tea.Model {
	return model{
		state:   stateMenu,
		presets: config.ListPresets(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.state == stateSim {
			newLive, cmd := m.liveModel.Update(msg)
			m.liveModel = newLive.(Model)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			m.state = stateConfig
			return m, nil
		}
		newLive, cmd := m.liveModel.Update(msg)
		m.liveModel = newLive.(Model)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.presets[m.cursor]
		m.cfg = config.GetPreset(m.selected)
		m.state, m.paramCursor, m.err = stateConfig, 0, ""
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	p := params[m.paramCursor]
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				p.set(m.cfg, v)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, strconv.FormatFloat(p.get(m.cfg), 'f', -1, 64)
	case "left", "h":
		p.set(m.cfg, p.get(m.cfg)-1)
	case "right", "l":
		p.set(m.cfg, p.get(m.cfg)+1)
	case "s":
		return m.start()
	}
	return m, nil
}

// start builds the live view. Invalid parameters and failed placement
// keep the config screen open with the error shown.
func (m model) start() (model, tea.Cmd) {
	live, err := NewModel(m.cfg)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.liveModel = live
	m.state = stateSim
	return m, live.Init()
}

func (m model) View() string {
	switch m.state {
	case stateConfig:
		return m.configView()
	case stateSim:
		return m.liveModel.View()
	}
	return m.menuView()
}

func (m model) menuView() string {
	var s strings.Builder
	s.WriteString("\n  " + heading.Render("bouncy colors") + faint.Render("  pick a preset") + "\n\n")
	for i, name := range m.presets {
		line := fmt.Sprintf("%-10s %s", name, presetInfo[name])
		if i == m.cursor {
			s.WriteString("  " + menuTheme.chrome().selected.Render("> "+line) + "\n")
		} else {
			s.WriteString("    " + plain.Render(name) + faint.Render(strings.TrimPrefix(line, name)) + "\n")
		}
	}
	s.WriteString("\n  " + faint.Render("↑↓ select · enter configure · q quit") + "\n")
	return s.String()
}

func (m model) configView() string {
	var s strings.Builder
	s.WriteString("\n  " + heading.Render(m.selected) + "\n\n")
	for i, p := range params {
		value := strconv.FormatFloat(p.get(m.cfg), 'f', -1, 64)
		if i == m.paramCursor && m.editing {
			value = m.editBuf + "_"
		}
		line := fmt.Sprintf("%-10s %s", p.name, value)
		if i == m.paramCursor {
			s.WriteString("  " + marked.Render("> "+line) + "\n")
		} else {
			s.WriteString("    " + plain.Render(line) + "\n")
		}
	}
	if m.err != "" {
		s.WriteString("\n  " + failure.Render(m.err) + "\n")
	}
	s.WriteString("\n  " + faint.Render("↑↓ select · enter edit · ←→ adjust · s start · esc back") + "\n")
	return s.String()
}
