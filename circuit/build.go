package circuit

import (
	"image"

	"github.com/wirelogic/wired-logic/raster"
)

// vonNeumann lists the four axis-aligned neighbour offsets in the fixed
// up, down, left, right order used throughout the topology builder.
var vonNeumann = [4]image.Point{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// fillStep is one entry of the flood-fill stack: the cell to visit and the
// cell it was reached from, needed to compute a crossing jump's direction.
type fillStep struct {
	coord, parent image.Point
}

// Build parses img into a Circuit via the two-pass flood fill of spec §4.2.
func Build(img image.Image) (*Circuit, error) {
	return BuildGrid(raster.New(img))
}

// BuildGrid runs the topology builder over an already-classified grid. The
// grid is mutated in place: every Wire(None) cell becomes Wire(id) and every
// transistor-shaped Void cell becomes Transistor.
func BuildGrid(g *raster.Grid) (*Circuit, error) {
	var wires []*Wire
	var state []uint8
	var pending []image.Point

	// Pass A: wire segmentation with crossing jumps.
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.Unassigned(x, y) {
				continue
			}
			id := len(wires)
			w := newWire(id)
			wires = append(wires, w)

			var maxObserved uint8
			stack := []fillStep{{coord: image.Pt(x, y), parent: image.Pt(x, y)}}
			for len(stack) > 0 {
				step := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := step.coord.X, step.coord.Y

				switch g.Kind(cx, cy) {
				case raster.Wire:
					if _, assigned := g.WireID(cx, cy); assigned {
						continue
					}
					if isSource(g, cx, cy) {
						w.isSource = true
					}
					if lvl := g.InitialCharge(cx, cy); lvl > maxObserved {
						maxObserved = lvl
					}
					w.addPixel(step.coord)
					g.Assign(cx, cy, id)
					for _, d := range vonNeumann {
						stack = append(stack, fillStep{coord: step.coord.Add(d), parent: step.coord})
					}
				case raster.Void:
					if isCrossing(g, cx, cy) {
						jump := step.coord.Add(step.coord.Sub(step.parent))
						stack = append(stack, fillStep{coord: jump, parent: step.coord})
					} else if isTransistorShape(g, cx, cy) {
						g.MarkTransistor(cx, cy)
						pending = append(pending, step.coord)
					}
				default:
					// Already assigned or Transistor: ignore.
				}
			}

			if w.isSource {
				state = append(state, MaxCharge)
			} else {
				state = append(state, maxObserved)
			}
		}
	}

	var err error
	if len(wires) == 0 {
		err = ErrEmptyRaster
	}

	// Pass B: transistor wiring.
	var transistors []*Transistor
	for _, coord := range pending {
		x, y := coord.X, coord.Y
		upID, upOk := g.WireID(x, y-1)
		downID, downOk := g.WireID(x, y+1)
		leftID, leftOk := g.WireID(x-1, y)
		rightID, rightOk := g.WireID(x+1, y)

		var pins [2]int
		var base int
		var haveBase bool
		switch {
		case upOk && downOk:
			pins = [2]int{upID, downID}
			if leftOk {
				base, haveBase = leftID, true
			} else if rightOk {
				base, haveBase = rightID, true
			}
		case leftOk && rightOk:
			pins = [2]int{leftID, rightID}
			if upOk {
				base, haveBase = upID, true
			} else if downOk {
				base, haveBase = downID, true
			}
		}
		if !haveBase || pins[0] == pins[1] || pins[0] == base || pins[1] == base {
			continue // degenerate candidate: dropped silently (spec §4.2/§9)
		}

		tid := len(transistors)
		t := &Transistor{index: tid, position: coord, base: base, pins: pins}
		transistors = append(transistors, t)
		wires[pins[0]].transistors = append(wires[pins[0]].transistors, tid)
		wires[pins[1]].transistors = append(wires[pins[1]].transistors, tid)
	}

	return &Circuit{
		Width:       g.W,
		Height:      g.H,
		Wires:       wires,
		Transistors: transistors,
		State:       state,
	}, err
}
