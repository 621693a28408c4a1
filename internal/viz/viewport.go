package viz

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
)

// Viewport maps arena coordinates onto a canvas, keeping the aspect ratio.
// Arena y grows downwards, like the canvas.
type Viewport struct {
	Arena physics.Arena
	Cols  int
	Rows  int
	scale float64
}

func NewViewport(a physics.Arena, cols, rows int) Viewport {
	sx := float64(cols*2-1) / a.Width
	sy := float64(rows*4-1) / a.Height
	return Viewport{
		Arena: a,
		Cols:  cols,
		Rows:  rows,
		scale: math.Min(sx, sy),
	}
}

// Scale returns sub-pixels per arena unit.
func (v Viewport) Scale() float64 { return v.scale }

// ToPixel maps an arena point to sub-pixel coordinates.
func (v Viewport) ToPixel(p r2.Point) (int, int) {
	return int(math.Round(p.X * v.scale)), int(math.Round(p.Y * v.scale))
}

// Length maps an arena distance to sub-pixels.
func (v Viewport) Length(d float64) int {
	return int(math.Round(d * v.scale))
}

// CellToArena returns the arena point at the centre of a canvas cell.
func (v Viewport) CellToArena(col, row int) r2.Point {
	return r2.Point{
		X: (float64(col*2) + 1) / v.scale,
		Y: (float64(row*4) + 2) / v.scale,
	}
}

// Inside reports whether a canvas cell lies over the arena.
func (v Viewport) Inside(col, row int) bool {
	if col < 0 || row < 0 || col >= v.Cols || row >= v.Rows {
		return false
	}
	p := v.CellToArena(col, row)
	return p.X <= v.Arena.Width+1/v.scale && p.Y <= v.Arena.Height+2/v.scale
}
