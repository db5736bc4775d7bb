package host

import (
	"image"
	"image/draw"

	"github.com/wirelogic/wired-logic/raster"
)

// Canvas is the mutable raster external collaborators paint and erase on
// between simulation frames (spec §4.8). It holds no graph or charge
// state of its own; callers call Simulator.Update(canvas.Image()) after a
// batch of edits to reparse.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a blank (all-Void) w by h canvas.
func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(raster.Void), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// NewCanvasFromImage copies src into a freshly allocated, paintable canvas.
func NewCanvasFromImage(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying raster for decoding, encoding, or passing
// to Simulator.Update / NewFromImage.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Paint sets (x,y) to the first CHARGE colour, unless it is already wire
// material, in which case it erases the pixel to Void (spec §6's "painting
// atop an existing wire erases"). It reports which mode it applied (true for
// paint, false for erase) so a caller can hold that mode fixed for the rest
// of a drag, the way the original host locks its draw/erase mode at
// mouse-down rather than re-deciding it pixel by pixel.
func (c *Canvas) Paint(x, y int) bool {
	if !c.img.Bounds().Contains(image.Pt(x, y)) {
		return true
	}
	if _, ok := raster.LevelOf(c.img.At(x, y)); ok {
		c.img.Set(x, y, raster.Void)
		return false
	}
	c.img.Set(x, y, raster.Charge[0])
	return true
}

// Erase clears (x,y) to Void unconditionally.
func (c *Canvas) Erase(x, y int) {
	if !c.img.Bounds().Contains(image.Pt(x, y)) {
		return
	}
	c.img.Set(x, y, raster.Void)
}

// PaintMode sets (x,y) to the first CHARGE colour if mode is true, or to
// Void if mode is false, regardless of the pixel's current contents. Unlike
// Paint, it never toggles: it is how a caller holds a drag's draw/erase
// decision fixed across every pixel the drag touches.
func (c *Canvas) PaintMode(x, y int, mode bool) {
	if mode {
		c.img.Set(x, y, raster.Charge[0])
		return
	}
	c.Erase(x, y)
}

// PaintLine paints every pixel on the segment from (x0,y0) to (x1,y1) in the
// given mode (true paints, false erases), using Bresenham's algorithm so a
// fast mouse drag leaves no gaps. mode is decided once by the caller, from
// Paint's return value at the drag's first pixel, and held fixed for the
// whole drag.
func (c *Canvas) PaintLine(x0, y0, x1, y1 int, mode bool) {
	walkLine(x0, y0, x1, y1, func(x, y int) { c.PaintMode(x, y, mode) })
}

// EraseLine clears every pixel on the segment from (x0,y0) to (x1,y1).
func (c *Canvas) EraseLine(x0, y0, x1, y1 int) {
	walkLine(x0, y0, x1, y1, c.Erase)
}

func walkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
