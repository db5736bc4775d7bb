package raster_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wirelogic/wired-logic/raster"
)

func TestNew_ClassifiesChargeColoursAsWireAndRecordsLevel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, raster.Charge[3])
	img.Set(1, 0, raster.Void)

	g := raster.New(img)
	require.True(t, g.WireMaterial(0, 0))
	require.Equal(t, uint8(3), g.InitialCharge(0, 0))
	require.False(t, g.WireMaterial(1, 0))
}

func TestNew_UnrecognisedColourIsVoid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{})
	g := raster.New(img)
	require.Equal(t, raster.Void, g.Kind(0, 0))
}

func TestGrid_OutOfBoundsIsAlwaysVoid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	g := raster.New(img)

	require.Equal(t, raster.Void, g.Kind(-1, 0))
	require.Equal(t, raster.Void, g.Kind(0, -1))
	require.Equal(t, raster.Void, g.Kind(100, 100))
	require.False(t, g.WireMaterial(-1, -1))
	require.False(t, g.Unassigned(-1, -1))

	id, ok := g.WireID(-1, 0)
	require.False(t, ok)
	require.Equal(t, 0, id)

	require.Equal(t, uint8(0), g.InitialCharge(-5, -5))
}

func TestGrid_UnassignedBecomesAssignedAfterAssign(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, raster.Charge[0])
	g := raster.New(img)

	require.True(t, g.Unassigned(0, 0))
	id, ok := g.WireID(0, 0)
	require.False(t, ok)

	g.Assign(0, 0, 7)
	require.False(t, g.Unassigned(0, 0))
	id, ok = g.WireID(0, 0)
	require.True(t, ok)
	require.Equal(t, 7, id)
}

func TestGrid_MarkTransistorReclassifiesVoidCell(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	g := raster.New(img)
	require.Equal(t, raster.Void, g.Kind(0, 0))

	g.MarkTransistor(0, 0)
	require.Equal(t, raster.Transistor, g.Kind(0, 0))
	require.False(t, g.WireMaterial(0, 0), "a transistor cell is not wire material")
}

func TestGrid_AtMatchesKind(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, raster.Charge[0])
	g := raster.New(img)
	require.Equal(t, g.Kind(0, 0), g.At(0, 0))
}

func TestLevelOf_RejectsArbitraryColour(t *testing.T) {
	_, ok := raster.LevelOf(color.RGBA{0x12, 0x34, 0x56, 0xff})
	require.False(t, ok)
}

func TestLevelOf_MatchesEveryChargeLevelExactly(t *testing.T) {
	for i, c := range raster.Charge {
		level, ok := raster.LevelOf(c)
		require.True(t, ok)
		require.Equal(t, uint8(i), level)
	}
}

func TestNew_RespectsNonOriginBounds(t *testing.T) {
	// A sub-image with a non-zero origin must still classify by local (x,y)
	// offset, not by absolute pixel coordinates.
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(2, 2, raster.Charge[0])
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	g := raster.New(sub)
	require.True(t, g.WireMaterial(0, 0))
}
