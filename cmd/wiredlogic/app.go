package main

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/host"
)

const minTickDelay = 10 * time.Millisecond

// app is the ebiten.Game implementation that drives the simulation loop
// and routes keyboard/mouse input, in the style of
// bdwalton/gintendo/console.Bus: Layout returns the raster's native
// resolution so ebiten scales the window, Draw blits the current frame
// pixel by pixel, and Update polls input once per tick.
type app struct {
	canvas *host.Canvas
	sim    *host.Simulator

	running  bool
	delay    time.Duration
	lastStep time.Time

	havePrevCursor bool
	prevCX, prevCY int
	drawMode       bool
}

func newApp(canvas *host.Canvas, sim *host.Simulator, delay time.Duration) *app {
	return &app{canvas: canvas, sim: sim, running: true, delay: delay, lastStep: time.Now()}
}

// Layout returns the canvas's native resolution, forcing ebiten to scale
// the display rather than resize the simulated raster.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := a.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}

func (a *app) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if a.running {
			a.running = false
		} else {
			if err := a.sim.Update(a.canvas.Image()); err != nil && !errors.Is(err, circuit.ErrEmptyRaster) {
				return err
			}
			a.running = true
			a.lastStep = time.Now()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		a.delay += 10 * time.Millisecond
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) && a.delay > minTickDelay {
		a.delay -= 10 * time.Millisecond
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		a.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.exportTemplate()
	}

	a.pollMouse()

	if a.running && time.Since(a.lastStep) >= a.delay {
		a.sim.Step()
		a.lastStep = time.Now()
	}
	return nil
}

// pollMouse paints (or erases) along the cursor's path while the left button
// is held, so a fast drag leaves no gaps (spec §6: "Mouse paints with the
// first CHARGE colour; painting atop an existing wire erases"). The
// draw-vs-erase decision is made once, on the press that starts the drag,
// and held fixed until the button is released, rather than re-decided at
// every pixel the drag crosses.
func (a *app) pollMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.havePrevCursor = false
		return
	}
	x, y := ebiten.CursorPosition()
	if a.havePrevCursor {
		a.canvas.PaintLine(a.prevCX, a.prevCY, x, y, a.drawMode)
	} else {
		a.drawMode = a.canvas.Paint(x, y)
	}
	a.prevCX, a.prevCY = x, y
	a.havePrevCursor = true
}

func (a *app) exportTemplate() {
	b := a.canvas.Image().Bounds()
	img := image.NewRGBA(b)
	a.sim.ExportTemplate(img)

	f, err := os.Create("template.png")
	if err != nil {
		log.Printf("wiredlogic: exporting template: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("wiredlogic: encoding template.png: %v", err)
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	b := a.canvas.Image().Bounds()
	frame := image.NewRGBA(b)
	if a.running {
		a.sim.Render(frame)
	} else {
		draw.Draw(frame, b, a.canvas.Image(), b.Min, draw.Src)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			screen.Set(x, y, frame.At(x, y))
		}
	}
}
