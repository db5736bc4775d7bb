// Package circuit builds and holds the wire/transistor graph a raster
// decodes into (spec §3, §4.2) and the per-wire charge vector that the
// simulation engine advances.
package circuit

import (
	"errors"
	"image"
)

// MaxCharge is the highest charge level a wire can hold.
const MaxCharge = 6

// ErrEmptyRaster is returned by Build when a raster contains no wire
// material at all; an empty Circuit is still returned (zero wires, zero
// transistors) since this is not otherwise an error condition, but callers
// that require at least one wire can check for it explicitly.
var ErrEmptyRaster = errors.New("circuit: raster contains no wire material")

// Wire is a maximal 4-connected region of wire-material pixels, with
// crossings bridged during the flood fill.
type Wire struct {
	index       int
	pixels      []image.Point
	bounds      image.Rectangle
	isSource    bool
	transistors []int // ids of transistors for which this wire is a pin
}

func newWire(index int) *Wire {
	return &Wire{index: index}
}

func (w *Wire) ID() int                    { return w.index }
func (w *Wire) Pixels() []image.Point      { return w.pixels }
func (w *Wire) Bounds() image.Rectangle    { return w.bounds }
func (w *Wire) IsSource() bool             { return w.isSource }
func (w *Wire) TransistorIDs() []int       { return w.transistors }

func (w *Wire) addPixel(p image.Point) {
	if len(w.pixels) == 0 {
		w.bounds = image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}
	} else {
		w.bounds = w.bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	w.pixels = append(w.pixels, p)
}

// Transistor is a T-shaped void cell gating two pin wires through a third,
// ungated base wire (spec §4.6).
type Transistor struct {
	index    int
	position image.Point
	base     int
	pins     [2]int
}

func (t *Transistor) ID() int               { return t.index }
func (t *Transistor) Position() image.Point { return t.position }
func (t *Transistor) Base() int             { return t.base }
func (t *Transistor) Pins() [2]int          { return t.pins }

// Circuit is the parsed wire/transistor graph plus the live charge vector,
// indexed by dense wire id (spec §3). Cross-references between wires and
// transistors are indices into Wires/Transistors, never pointers, so the
// graph can be discarded and rebuilt wholesale on every edit.
type Circuit struct {
	Width, Height int
	Wires         []*Wire
	Transistors   []*Transistor
	State         []uint8
}

// Wire returns the wire with the given id.
func (c *Circuit) Wire(id int) *Wire { return c.Wires[id] }

// Transistor returns the transistor with the given id.
func (c *Circuit) Transistor(id int) *Transistor { return c.Transistors[id] }

// Reset sets every wire's charge to zero (spec §6 reset).
func (c *Circuit) Reset() {
	for i := range c.State {
		c.State[i] = 0
	}
}
