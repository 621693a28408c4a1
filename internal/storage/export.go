package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fabiodan/bouncy-colors/internal/sim"
)

type BodyData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	Visual int     `json:"visual"`
}

type FrameData struct {
	Tick     int        `json:"tick"`
	Contacts int        `json:"contacts"`
	WallHits int        `json:"wall_hits"`
	Bodies   []BodyData `json:"bodies"`
}

type ExportData struct {
	Run    RunMetadata `json:"run"`
	Frames []FrameData `json:"frames"`
}

func newExportData(meta *RunMetadata, frames []sim.Frame) ExportData {
	data := ExportData{
		Run:    *meta,
		Frames: make([]FrameData, len(frames)),
	}

	for i, f := range frames {
		fd := FrameData{
			Tick:     f.Tick,
			Contacts: len(f.Contacts),
			WallHits: f.WallHits,
			Bodies:   make([]BodyData, len(f.Bodies)),
		}
		for j, b := range f.Bodies {
			fd.Bodies[j] = BodyData{
				X:      b.Position.X,
				Y:      b.Position.Y,
				VX:     b.Velocity.X,
				VY:     b.Velocity.Y,
				Radius: b.Radius(),
				Visual: int(b.Visual),
			}
		}
		data.Frames[i] = fd
	}
	return data
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// ExportJSON writes a run with its full trajectory to path.
func ExportJSON(path string, meta *RunMetadata, frames []sim.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, newExportData(meta, frames))
}

func ExportJSONStdout(meta *RunMetadata, frames []sim.Frame) error {
	return writeJSON(os.Stdout, newExportData(meta, frames))
}

// ExportMetadata writes only the run metadata.
func ExportMetadata(w io.Writer, meta *RunMetadata) error {
	return writeJSON(w, meta)
}
