package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(2, 3) {
		t.Error("IsSet disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][0])
	}

	// Out of range writes are ignored.
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if strings.Count(c.String(), "\n") != 1 {
		t.Errorf("unexpected canvas output %q", c.String())
	}
}

func TestCanvasTags(t *testing.T) {
	c := NewCanvas(4, 4)

	c.SetTagged(1, 1, 3)
	if c.Tags[0][0] != 3 {
		t.Errorf("expected tag 3, got %d", c.Tags[0][0])
	}

	c.Unset(1, 1)
	if c.Tags[0][0] != 0 {
		t.Error("tag should clear with the last dot")
	}

	c.SetTagged(1, 1, 2)
	c.Clear()
	if c.Tags[0][0] != 0 || c.Grid[0][0] != blank {
		t.Error("Clear should reset dots and tags")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3, 1)

	if !c.IsSet(10, 10) || !c.IsSet(13, 10) || !c.IsSet(10, 7) {
		t.Error("expected centre and axis extremes to be set")
	}
	if c.IsSet(13, 13) {
		t.Error("corner outside the disc should stay clear")
	}

	c.Clear()
	c.FillCircle(4, 4, 0, 2)
	if !c.IsSet(4, 4) {
		t.Error("zero radius should still light the centre")
	}
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawCircle(10, 10, 4, 1)

	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected (%d,%d) on the circle", p[0], p[1])
		}
	}
	if c.IsSet(10, 10) {
		t.Error("outline should not fill the centre")
	}
}

func TestRender(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0)
	c.SetTagged(2, 0, 1)

	out := c.Render([]lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle()})
	if !strings.Contains(out, string(rune(0x2801))) {
		t.Errorf("rendered output lost dots: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestViewport(t *testing.T) {
	v := NewViewport(physics.Arena{Width: 500, Height: 500}, 60, 30)

	x, y := v.ToPixel(r2.Point{X: 500, Y: 500})
	if x >= 120 || y >= 120 {
		t.Errorf("arena corner maps outside the canvas: (%d,%d)", x, y)
	}
	if x != y {
		t.Errorf("square arena should keep aspect, got (%d,%d)", x, y)
	}

	p := v.CellToArena(0, 0)
	if p.X <= 0 || p.Y <= 0 || p.X > 10 || p.Y > 10 {
		t.Errorf("unexpected arena point for first cell: %v", p)
	}

	if !v.Inside(0, 0) || v.Inside(-1, 0) || v.Inside(60, 0) || v.Inside(0, 30) {
		t.Error("Inside disagrees with canvas bounds")
	}

	tall := NewViewport(physics.Arena{Width: 300, Height: 600}, 60, 30)
	x, y = tall.ToPixel(r2.Point{X: 300, Y: 600})
	if y >= 120 || x >= y {
		t.Errorf("tall arena should fit by height, got (%d,%d)", x, y)
	}
	if tall.Inside(59, 0) {
		t.Error("cells right of a tall arena are not inside")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}

	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Error("NextTheme should visit every theme and wrap")
	}

	if got := len(ThemeClassic.CanvasStyles()); got != physics.NumVisualStates+1 {
		t.Errorf("expected %d canvas styles, got %d", physics.NumVisualStates+1, got)
	}
	if ThemeClassic.BodyColor(5) != ThemeClassic.Bodies[1] {
		t.Error("BodyColor should wrap visual states")
	}
	if len(ThemeClassic.palette()) != physics.NumVisualStates+2 {
		t.Error("palette should hold background, outline and body colours")
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		from, to lipgloss.Color
		f        float64
		want     lipgloss.Color
	}{
		{"start", "#000000", "#ffffff", 0, "#000000"},
		{"end", "#000000", "#ffffff", 1, "#ffffff"},
		{"unparsed from", "86", "#ffffff", 0.5, "86"},
		{"unparsed to", "#123456", "red", 0.5, "#123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blend(tt.from, tt.to, tt.f); got != tt.want {
				t.Errorf("blend = %s, want %s", got, tt.want)
			}
		})
	}
}

func countLevels(s string) map[rune]int {
	counts := map[rune]int{}
	for _, r := range s {
		if strings.ContainsRune(string(levels), r) {
			counts[r]++
		}
	}
	return counts
}

func TestChromeTrace(t *testing.T) {
	c := ThemeClassic.chrome()

	rising := make([]float64, 50)
	for i := range rising {
		rising[i] = float64(i)
	}
	total := 0
	counts := countLevels(c.trace(rising, 30))
	for _, n := range counts {
		total += n
	}
	if total != 30 {
		t.Errorf("expected 30 samples drawn, got %d", total)
	}
	if counts[levels[0]] == 0 || counts[levels[len(levels)-1]] == 0 {
		t.Error("newest window should span the lowest and highest level")
	}

	flat := countLevels(c.trace([]float64{7, 7, 7}, 30))
	if flat[levels[3]] != 3 || len(flat) != 1 {
		t.Errorf("flat series should sit on the middle level, got %v", flat)
	}

	if len(countLevels(c.trace(nil, 10))) != 0 {
		t.Error("empty series should draw no levels")
	}
}

func TestChromeFollowsTheme(t *testing.T) {
	for _, th := range Themes {
		c := th.chrome()
		if c.recording.GetForeground() != th.Error {
			t.Errorf("%s: recording badge should use the error colour", th.Name)
		}
		if c.value.GetForeground() != th.Primary {
			t.Errorf("%s: metric values should use the primary colour", th.Name)
		}
		if c.panel.GetBorderTopForeground() != th.Muted {
			t.Errorf("%s: panel border should use the muted colour", th.Name)
		}
	}

	if got := strings.Count(ThemeOcean.rule(36), "●"); got != physics.NumVisualStates {
		t.Errorf("rule should show %d body dots, got %d", physics.NumVisualStates, got)
	}
}
