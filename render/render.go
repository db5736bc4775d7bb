// Package render paints a circuit.Circuit's charge vector back into a
// raster and extracts a minimal-length looping animation from it (spec
// §4.7).
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/raster"
	"github.com/wirelogic/wired-logic/simulation"
)

// ErrNoLoopFound is returned by LoopFrames when no repeated state is
// observed within the caller-supplied step bound (spec §4.7, §9).
var ErrNoLoopFound = errors.New("render: no repeating state found within step bound")

// Palette is the fixed 8-colour palette every rendered frame uses: Void at
// index 0, followed by raster.Charge[0..MaxCharge].
func Palette() color.Palette {
	pal := make(color.Palette, 0, raster.MaxCharge+2)
	pal = append(pal, raster.Void)
	for _, c := range raster.Charge {
		pal = append(pal, c)
	}
	return pal
}

// Draw paints every wire of c onto dst at its current charge colour.
func Draw(c *circuit.Circuit, dst draw.Image) {
	for _, w := range c.Wires {
		col := raster.Charge[c.State[w.ID()]]
		for _, p := range w.Pixels() {
			dst.Set(p.X, p.Y, col)
		}
	}
}

// ExportTemplate paints every wire of c in its "off" colour, regardless of
// current charge, for saving a circuit ready to be reloaded at rest.
func ExportTemplate(c *circuit.Circuit, dst draw.Image) {
	off := raster.Charge[0]
	for _, w := range c.Wires {
		for _, p := range w.Pixels() {
			dst.Set(p.X, p.Y, off)
		}
	}
}

// DiffDraw paints only the wires whose charge differs between prev and c's
// current state, for hosts that want cheap incremental redraws.
func DiffDraw(c *circuit.Circuit, prev []uint8, dst draw.Image) {
	for _, w := range c.Wires {
		id := w.ID()
		if prev[id] == c.State[id] {
			continue
		}
		col := raster.Charge[c.State[id]]
		for _, p := range w.Pixels() {
			dst.Set(p.X, p.Y, col)
		}
	}
}

// newCanvas allocates a blank (all-Void) paletted frame sized to c.
func newCanvas(c *circuit.Circuit) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, c.Width, c.Height), Palette())
}

// DrawAll renders a fixed-length sequence of frameCount frames by repeated
// stepping, independent of loop detection: frame 0 is c's current state,
// frame i+1 is one tick later. c is left at the state of the last frame.
func DrawAll(c *circuit.Circuit, frameCount int) []*image.Paletted {
	frames := make([]*image.Paletted, frameCount)
	canvas := newCanvas(c)
	Draw(c, canvas)
	frames[0] = canvas

	for i := 1; i < frameCount; i++ {
		prev := simulation.Snapshot(c)
		simulation.Step(c)
		next := image.NewPaletted(canvas.Rect, Palette())
		copy(next.Pix, canvas.Pix)
		DiffDraw(c, prev, next)
		frames[i] = next
		canvas = next
	}
	return frames
}
