package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	panelWidth = 44
	labelWidth = 12
)

// levels are the block runes of the energy trace, lowest first.
var levels = []rune("▁▂▃▄▅▆▇█")

// chrome is the panel styling of one theme. Panel, badges and the energy
// trace take their colours from the same Theme as the bodies, so switching
// themes recolours everything at once.
type chrome struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	note     lipgloss.Style
	hint     lipgloss.Style
	selected lipgloss.Style

	running   lipgloss.Style
	paused    lipgloss.Style
	recording lipgloss.Style

	// low, middle and high thirds of the trace
	bands [3]lipgloss.Style
}

func (t Theme) chrome() chrome {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	badge := func(c lipgloss.Color) lipgloss.Style { return fg(c).Bold(true) }

	return chrome{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(panelWidth),
		title: badge(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		label:    fg(t.Muted).Width(labelWidth),
		value:    badge(t.Primary),
		note:     fg(t.Text),
		hint:     fg(t.Muted).Italic(true),
		selected: badge(t.Background).Background(t.Accent),

		running:   badge(t.Success),
		paused:    badge(t.Warning),
		recording: badge(t.Error).Blink(true),

		bands: [3]lipgloss.Style{fg(t.Error), fg(t.Warning), fg(t.Success)},
	}
}

// blend mixes two hex colours in Lab space; f = 0 gives from, f = 1 gives
// to. Colours that do not parse leave from unchanged.
func blend(from, to lipgloss.Color, f float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return from
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return lipgloss.Color(a.BlendLab(b, f).Clamped().Hex())
}

// gradient colours each rune of text along the blend from one colour to
// the other.
func gradient(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var sb strings.Builder
	last := float64(len(runes) - 1)
	for i, r := range runes {
		c := blend(from, to, float64(i)/last)
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return sb.String()
}

// trace draws the newest width samples as block runes scaled between their
// minimum and maximum. A flat series sits on the middle level.
func (c chrome) trace(values []float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return c.hint.Render(strings.Repeat("·", width))
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	var sb strings.Builder
	for _, v := range values {
		norm := 0.5
		if hi > lo {
			norm = (v - lo) / (hi - lo)
		}
		idx := int(norm * float64(len(levels)-1))
		band := min(int(norm*3), 2)
		sb.WriteString(c.bands[band].Render(string(levels[idx])))
	}
	return sb.String()
}

// rule is a horizontal divider with one dot per body colour in the middle.
func (t Theme) rule(width int) string {
	dots := make([]string, len(t.Bodies))
	for i, b := range t.Bodies {
		dots[i] = lipgloss.NewStyle().Foreground(b).Render("●")
	}
	side := max((width-2*len(dots)-1)/2, 0)
	line := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("─", side))
	return line + " " + strings.Join(dots, " ") + " " + line
}
