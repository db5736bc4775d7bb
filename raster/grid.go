package raster

import "image"

// Kind is the classification of a single grid cell (spec §4.1).
type Kind uint8

const (
	Void Kind = iota
	Wire
	Transistor
)

// noWire marks a Wire cell that has not yet been assigned to a wire id
// during the flood fill (Wire(None) in spec terms).
const noWire = -1

// Grid is the classifier's output: one Kind plus (for Wire cells) a wire id
// and the pixel's original charge level, for every pixel of the source
// raster. It is mutated in place by the topology builder's two passes.
type Grid struct {
	W, H   int
	kind   []Kind
	wireID []int32
	charge []uint8
}

// New classifies img into a Grid. Every pixel matching some raster.Charge
// colour becomes a Wire(None) cell recording its initial charge; everything
// else is Void.
func New(img image.Image) *Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := &Grid{
		W:      w,
		H:      h,
		kind:   make([]Kind, w*h),
		wireID: make([]int32, w*h),
		charge: make([]uint8, w*h),
	}
	for i := range g.wireID {
		g.wireID[i] = noWire
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			level, ok := LevelOf(img.At(b.Min.X+x, b.Min.Y+y))
			if !ok {
				continue
			}
			idx := g.index(x, y)
			g.kind[idx] = Wire
			g.charge[idx] = level
		}
	}
	return g
}

func (g *Grid) index(x, y int) int { return y*g.W + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Kind returns the classification of (x,y). Out-of-bounds coordinates are
// always Void, per spec §4.1 — this includes coordinates produced by
// arithmetic underflow/overflow on neighbour lookups.
func (g *Grid) Kind(x, y int) Kind {
	if !g.inBounds(x, y) {
		return Void
	}
	return g.kind[g.index(x, y)]
}

// WireMaterial reports whether (x,y) is any flavour of Wire cell, whether
// or not it has been assigned a wire id yet.
func (g *Grid) WireMaterial(x, y int) bool {
	return g.Kind(x, y) == Wire
}

// WireID returns the wire id assigned to (x,y), or (0, false) if the cell
// is unassigned, not a Wire cell, or out of bounds.
func (g *Grid) WireID(x, y int) (int, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	idx := g.index(x, y)
	if g.kind[idx] != Wire || g.wireID[idx] == noWire {
		return 0, false
	}
	return int(g.wireID[idx]), true
}

// Unassigned reports whether (x,y) is a Wire cell not yet folded into a
// wire during the flood fill.
func (g *Grid) Unassigned(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	idx := g.index(x, y)
	return g.kind[idx] == Wire && g.wireID[idx] == noWire
}

// InitialCharge returns the charge level recorded for (x,y) when it was
// classified, i.e. the pixel's original colour index into raster.Charge.
func (g *Grid) InitialCharge(x, y int) uint8 {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.charge[g.index(x, y)]
}

// Assign records that (x,y) belongs to wire id.
func (g *Grid) Assign(x, y, id int) {
	g.kind[g.index(x, y)] = Wire
	g.wireID[g.index(x, y)] = int32(id)
}

// MarkTransistor reclassifies the Void cell at (x,y) as Transistor.
func (g *Grid) MarkTransistor(x, y int) {
	g.kind[g.index(x, y)] = Transistor
}

// At classifies a coordinate for external callers (spec §6 At(x,y)).
func (g *Grid) At(x, y int) Kind {
	return g.Kind(x, y)
}
