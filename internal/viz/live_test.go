package viz

import (
	"errors"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fabiodan/bouncy-colors/internal/config"
	"github.com/fabiodan/bouncy-colors/internal/physics"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Bodies = 4
	cfg.Radius = 20
	cfg.Seed = 7
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Radius = 0
	if _, err := NewModel(cfg); !errors.Is(err, physics.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLiveTicks(t *testing.T) {
	m := testModel(t)

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	if m.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", m.Ticks())
	}

	m = update(t, m, key(" "))
	m = update(t, m, TickMsg{})
	if m.Ticks() != 2 {
		t.Errorf("paused model should not tick, got %d", m.Ticks())
	}

	m = update(t, m, key("n"))
	if m.Ticks() != 3 {
		t.Errorf("single step should tick once, got %d", m.Ticks())
	}

	m = update(t, m, key("r"))
	if m.Ticks() != 0 {
		t.Errorf("reset should start over, got %d", m.Ticks())
	}
}

func TestLiveClickCyclesColour(t *testing.T) {
	m := testModel(t)
	target := m.sim.Bodies()[2]

	x, y := m.view.ToPixel(target.Position)
	col, row := x/2, y/4
	p := m.view.CellToArena(col, row)
	want, ok := m.sim.LocateBodyAt(p.X, p.Y)
	if !ok {
		t.Fatalf("no body under cell (%d,%d)", col, row)
	}
	before := m.sim.Bodies()[want].Visual

	m = update(t, m, tea.MouseMsg{
		X:      col + canvasOffsetX,
		Y:      row + canvasOffsetY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := m.sim.Bodies()[want].Visual; got != before.Next() {
		t.Errorf("expected visual %d, got %d", before.Next(), got)
	}
	if m.selected != want {
		t.Errorf("expected body %d selected, got %d", want, m.selected)
	}
}

func TestLiveClickMisses(t *testing.T) {
	m := testModel(t)
	before := m.sim.Bodies()

	// Releases and clicks outside the canvas do nothing.
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	for i, b := range m.sim.Bodies() {
		if b.Visual != before[i].Visual {
			t.Errorf("body %d changed colour", i)
		}
	}
}

func TestLiveKeyboardSelection(t *testing.T) {
	m := testModel(t)

	m = update(t, m, key("enter"))
	for i, b := range m.sim.Bodies() {
		if b.Visual != 0 {
			t.Errorf("enter without selection recoloured body %d", i)
		}
	}

	m = update(t, m, key("tab"))
	m = update(t, m, key("tab"))
	m = update(t, m, key("enter"))
	if m.selected != 1 {
		t.Fatalf("expected body 1 selected, got %d", m.selected)
	}
	if m.sim.Bodies()[1].Visual != 1 {
		t.Errorf("expected body 1 to cycle to 1, got %d", m.sim.Bodies()[1].Visual)
	}
}

func TestLiveView(t *testing.T) {
	m := testModel(t)
	m = update(t, m, TickMsg{})
	m = update(t, m, key("t"))

	out := m.View()
	for _, want := range []string{"RUNNING", "Tick", "cyberpunk"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = update(t, m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}
}

func TestLiveRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.gif")
	m := testModel(t).WithGIFPath(path)

	m = update(t, m, key("g"))
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}
	if len(m.frames) != 5 {
		t.Fatalf("expected 5 captured frames, got %d", len(m.frames))
	}
	m = update(t, m, key("g"))

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("expected 5 frames, got %d", len(anim.Image))
	}
}

func TestInteractiveApp(t *testing.T) {
	var app tea.Model = NewInteractiveApp()

	app, _ = app.Update(key("j"))
	app, _ = app.Update(key("enter"))
	if !strings.Contains(app.View(), "bodies") {
		t.Fatal("expected config screen")
	}

	app, cmd := app.Update(key("s"))
	if cmd == nil {
		t.Error("starting the live view should schedule a tick")
	}
	app, _ = app.Update(TickMsg{})
	if !strings.Contains(app.View(), "BOUNCY COLORS") {
		t.Error("expected live view")
	}

	app, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(app.View(), "start") {
		t.Error("esc should return to the config screen")
	}
}

func TestSaveGIF_Errors(t *testing.T) {
	if err := saveGIF(filepath.Join(t.TempDir(), "empty.gif"), nil, 2); err == nil {
		t.Error("expected an error with no frames")
	}

	frame := rasterize(NewCanvas(2, 2), ThemeClassic.palette())
	missing := filepath.Join(t.TempDir(), "missing", "out.gif")
	if err := saveGIF(missing, []*image.Paletted{frame}, 2); err == nil {
		t.Error("expected an error for an unwritable path")
	}

	path := filepath.Join(t.TempDir(), "one.gif")
	if err := saveGIF(path, []*image.Paletted{frame}, 0); err != nil {
		t.Fatalf("saveGIF failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if anim.Delay[0] != minFrameDelay {
		t.Errorf("delay should be raised to %d, got %d", minFrameDelay, anim.Delay[0])
	}
}
