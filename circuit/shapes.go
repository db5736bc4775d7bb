package circuit

import "github.com/wirelogic/wired-logic/raster"

// isSource reports whether the 2x2 block anchored at (x,y) is entirely wire
// material, i.e. whether a wire containing (x,y) is a power source (spec
// §4.4). Out-of-bounds neighbours count as not-wire-material, so a wire
// can never be flagged a source purely from pixels past the image's right
// or bottom edge.
func isSource(g *raster.Grid, x, y int) bool {
	return g.WireMaterial(x+1, y) && g.WireMaterial(x, y+1) && g.WireMaterial(x+1, y+1)
}

// isCrossing reports whether the Void cell at (x,y) is two wires passing
// through each other: all four Von Neumann neighbours are wire material and
// all four diagonals are Void (spec §4.5).
func isCrossing(g *raster.Grid, x, y int) bool {
	if g.WireMaterial(x-1, y-1) || g.WireMaterial(x+1, y-1) ||
		g.WireMaterial(x-1, y+1) || g.WireMaterial(x+1, y+1) {
		return false
	}
	return g.WireMaterial(x, y-1) && g.WireMaterial(x, y+1) &&
		g.WireMaterial(x-1, y) && g.WireMaterial(x+1, y)
}

// isTransistorShape reports whether the Void cell at (x,y) is a T: exactly
// three of its four Von Neumann neighbours are wire material, and both
// diagonal corners adjacent to the missing arm are Void (spec §4.6).
func isTransistorShape(g *raster.Grid, x, y int) bool {
	up := g.WireMaterial(x, y-1)
	down := g.WireMaterial(x, y+1)
	left := g.WireMaterial(x-1, y)
	right := g.WireMaterial(x+1, y)

	ul := g.WireMaterial(x-1, y-1)
	ur := g.WireMaterial(x+1, y-1)
	dl := g.WireMaterial(x-1, y+1)
	dr := g.WireMaterial(x+1, y+1)

	switch {
	case up && down && left && !right:
		return !ul && !dl
	case up && down && !left && right:
		return !ur && !dr
	case left && right && up && !down:
		return !ul && !ur
	case left && right && !up && down:
		return !dl && !dr
	default:
		return false
	}
}
