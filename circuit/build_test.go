package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/internal/testimage"
)

func TestBuild_IsolatedPixel(t *testing.T) {
	img := testimage.FromASCII(`W`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 1)
	require.Empty(t, c.Transistors)
	require.False(t, c.Wires[0].IsSource())
	require.Len(t, c.Wires[0].Pixels(), 1)
}

func TestBuild_EmptyRaster(t *testing.T) {
	img := testimage.FromASCII(`...`)
	c, err := circuit.Build(img)
	require.ErrorIs(t, err, circuit.ErrEmptyRaster)
	require.Empty(t, c.Wires)
	require.Equal(t, 0, len(c.State))
}

func TestBuild_SourceSquare(t *testing.T) {
	img := testimage.FromASCII(`
		WW
		WW
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 1)
	require.True(t, c.Wires[0].IsSource())
	require.Len(t, c.Wires[0].Pixels(), 4)
	require.Equal(t, uint8(circuit.MaxCharge), c.State[0])
}

func TestBuild_NonSourceAtBorder(t *testing.T) {
	// A 2x2-looking block clipped by the image edge must not be flagged a
	// source: isSource(coord) treats out-of-bounds neighbours as not wire
	// material (spec §4.4).
	img := testimage.FromASCII(`WW`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 1)
	require.False(t, c.Wires[0].IsSource())
}

func TestBuild_CrossingBridgesEachBarSeparately(t *testing.T) {
	// A plus-shape crossing lets the fill leap straight across the Void
	// centre in the direction of travel, so the vertical bar and the
	// horizontal bar each become their own single wire — the centre itself
	// never joins either (see DESIGN.md's note on spec §8's crossing
	// wording). Energising one bar must not visibly connect to the other.
	img := testimage.FromASCII(`
		.W.
		W.W
		.W.
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 2)
	for _, w := range c.Wires {
		require.Len(t, w.Pixels(), 2, "each bar of the crossing is its own 2-pixel wire")
	}
}

func TestBuild_CrossingVsTBoundary(t *testing.T) {
	// Three-armed cross-like shapes are not crossings (a crossing needs all
	// four diagonals Void AND all four arms present); this is covered by
	// the transistor-shape tests instead. Here we confirm a true plus with
	// one corner occupied is NOT treated as a crossing: the centre cell is
	// then plain Void (not a crossing, and not a transistor T either, since
	// all four arms are present), so the fill never bridges it. The top and
	// left arms, joined through the filled corner, form one wire and the
	// right and bottom arms are each their own, three separate wires in all.
	img := testimage.FromASCII(`
		WW.
		W.W
		.W.
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(c.Wires), 2)
}

func TestBuild_TransistorMissingRight(t *testing.T) {
	// U,D,L present; R absent; UL and DL Void.
	img := testimage.FromASCII(`
		.W.
		W..
		.W.
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Transistors, 1)
	require.Len(t, c.Wires, 3)

	tr := c.Transistors[0]
	pins := tr.Pins()
	require.NotEqual(t, pins[0], pins[1])
	require.NotEqual(t, tr.Base(), pins[0])
	require.NotEqual(t, tr.Base(), pins[1])

	// The base wire must not list the transistor as one of its own.
	base := c.Wire(tr.Base())
	require.NotContains(t, base.TransistorIDs(), tr.ID())
	// Both pin wires must list it.
	require.Contains(t, c.Wire(pins[0]).TransistorIDs(), tr.ID())
	require.Contains(t, c.Wire(pins[1]).TransistorIDs(), tr.ID())
}

func TestBuild_DegenerateTransistorDropped(t *testing.T) {
	// A valid T-shape at (2,2) (up, down, left present; right absent; both
	// required corners Void) whose up and left arms are, via a path routed
	// well clear of the candidate's corners, the very same wire: base and
	// one pin coincide, so the candidate must be dropped silently rather
	// than recorded as a self-gating transistor.
	img := testimage.FromASCII(`
		WWW.
		W.W.
		WW..
		..W.
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 2)
	require.Empty(t, c.Transistors)
}

func TestBuild_InitialChargeIsMaxObserved(t *testing.T) {
	img := testimage.FromASCII(`
		3W5
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 1)
	require.Equal(t, uint8(5), c.State[0])
}

func TestBuild_DisjointWiresGetDistinctIDs(t *testing.T) {
	img := testimage.FromASCII(`
		W.W
	`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 2)
	require.NotEqual(t, c.Wires[0].ID(), c.Wires[1].ID())
}

func TestBuild_1x1VoidRasterParsesWithoutFault(t *testing.T) {
	img := testimage.FromASCII(`.`)
	c, err := circuit.Build(img)
	require.ErrorIs(t, err, circuit.ErrEmptyRaster)
	require.NotNil(t, c)
	require.Equal(t, 1, c.Width)
	require.Equal(t, 1, c.Height)
}

func TestBuild_1x1WireRasterParsesWithoutFault(t *testing.T) {
	img := testimage.FromASCII(`W`)
	c, err := circuit.Build(img)
	require.NoError(t, err)
	require.Len(t, c.Wires, 1)
	require.False(t, c.Wires[0].IsSource())
}
