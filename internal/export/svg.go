package export

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/fabiodan/bouncy-colors/internal/physics"
	"github.com/fabiodan/bouncy-colors/internal/viz"
)

func header(sb *strings.Builder, width, height float64, background string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// SnapshotToSVG draws every body as a circle in arena coordinates, filled
// with the theme colour of its visual state.
func SnapshotToSVG(arena physics.Arena, bodies []physics.Body, theme viz.Theme) string {
	var sb strings.Builder
	header(&sb, arena.Width, arena.Height, string(theme.Background))

	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%g" height="%g" fill="none" stroke="%s"/>
`, arena.Width, arena.Height, theme.Muted))

	for i, b := range bodies {
		sb.WriteString(fmt.Sprintf(`<circle id="body-%d" cx="%.2f" cy="%.2f" r="%g" fill="%s"/>
`, i, b.Position.X, b.Position.Y, b.Radius(), theme.BodyColor(b.Visual)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format, one dot per lit
// sub-pixel, coloured by cell tag.
func CanvasToSVG(canvas *viz.Canvas, theme viz.Theme, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	header(&sb, width, height, string(theme.Background))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.PixelHeight(); y++ {
		for x := 0; x < canvas.PixelWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := theme.Muted
			if tag := canvas.Tags[y/4][x/2]; tag > 0 {
				fill = theme.BodyColor(physics.VisualState(tag - 1))
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrajectoryToSVG draws a path through points inside the arena outline.
// It returns "" for fewer than two points.
func TrajectoryToSVG(points []r2.Point, arena physics.Arena, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	var sb strings.Builder
	header(&sb, arena.Width, arena.Height, "#0a0a0a")

	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%g" height="%g" fill="none" stroke="#444444"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`, arena.Width, arena.Height, strokeColor))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}

	last := points[len(points)-1]
	sb.WriteString(fmt.Sprintf(`"/>
<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
</svg>`, last.X, last.Y, strokeColor))
	return sb.String()
}
