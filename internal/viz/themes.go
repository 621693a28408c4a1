package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	// Bodies holds one colour per visual state.
	Bodies [physics.NumVisualStates]lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Primary:    lipgloss.Color("#4488ff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
		Bodies: [physics.NumVisualStates]lipgloss.Color{
			"#0000ff", "#ff0000", "#00cc00", "#ffff00",
		},
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ff8800"),
		Error:      lipgloss.Color("#ff0000"),
		Bodies: [physics.NumVisualStates]lipgloss.Color{
			"#00ffff", "#ff00ff", "#ffff00", "#ff8800",
		},
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
		Bodies: [physics.NumVisualStates]lipgloss.Color{
			"#00ff00", "#88ff88", "#ccff00", "#ffffff",
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
		Error:      lipgloss.Color("#ff4444"),
		Bodies: [physics.NumVisualStates]lipgloss.Color{
			"#00a8cc", "#ffd700", "#00ff88", "#ff6b6b",
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
		Bodies: [physics.NumVisualStates]lipgloss.Color{
			"#ff6b6b", "#feca57", "#ff9ff3", "#48dbfb",
		},
	}

	// All available themes. The first is the fallback.
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BodyColor returns the colour of a visual state.
func (t Theme) BodyColor(v physics.VisualState) lipgloss.Color {
	return t.Bodies[int(v)%physics.NumVisualStates]
}

// CanvasStyles returns one style per canvas tag: tag 0 draws in the muted
// colour, tag k+1 draws visual state k.
func (t Theme) CanvasStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, 0, physics.NumVisualStates+1)
	styles = append(styles, lipgloss.NewStyle().Foreground(t.Muted))
	for _, c := range t.Bodies {
		styles = append(styles, lipgloss.NewStyle().Foreground(c))
	}
	return styles
}
