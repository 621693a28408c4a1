package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	dotW, dotH    = 2, 2
	maxGIFFrames  = 900
	minFrameDelay = 2
)

// palette returns background, outline and one entry per visual state,
// matching canvas tags shifted by one.
func (t Theme) palette() color.Palette {
	p := color.Palette{toRGBA(t.Background), toRGBA(t.Muted)}
	for _, c := range t.Bodies {
		p = append(p, toRGBA(c))
	}
	return p
}

// toRGBA converts a hex theme colour. Anything else becomes white.
func toRGBA(c lipgloss.Color) color.RGBA {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	r, g, b := cc.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// captureFrame rasterises the canvas into a paletted image. Every Braille
// dot becomes a dotW x dotH block.
func (m *Model) captureFrame() {
	if len(m.frames) >= maxGIFFrames {
		m.stopRecording()
		return
	}
	m.frames = append(m.frames, rasterize(m.canvas, m.theme.palette()))
}

func rasterize(c *Canvas, p color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.PixelWidth()*dotW, c.PixelHeight()*dotH), p)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if !c.IsSet(x, y) {
				continue
			}
			idx := uint8(1) + c.Tags[y/4][x/2]
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, idx)
				}
			}
		}
	}
	return img
}

func (m *Model) stopRecording() {
	if err := saveGIF(m.gifPath, m.frames, m.interval.Milliseconds()/10); err != nil {
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.recording = false
	m.frames = nil
}

func saveGIF(path string, frames []*image.Paletted, delay int64) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	if delay < minFrameDelay {
		delay = minFrameDelay
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, int(delay))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gif.EncodeAll(f, &anim)
}
