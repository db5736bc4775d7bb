// Command wiredlogic is the reference host for the wired-logic simulation
// core: a windowed editor/runner, plus a headless mode for exporting a
// circuit's repeating animation as a GIF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/host"
	"github.com/wirelogic/wired-logic/render"
)

const defaultSize = 64

var (
	tickDelay = flag.Duration("delay", 100*time.Millisecond, "tick delay while running")
	maxLoop   = flag.Int("max-loop", 10000, "max steps searched for a repeating state before giving up")
)

func main() {
	flag.Parse()
	args := flag.Args()

	var canvas *host.Canvas
	var outputGIF string

	switch len(args) {
	case 0:
		canvas = host.NewCanvas(defaultSize, defaultSize)
	case 1:
		if w, h, ok := parseSize(args[0]); ok {
			canvas = host.NewCanvas(w, h)
		} else {
			canvas = loadCanvas(args[0])
		}
	case 2:
		canvas = loadCanvas(args[0])
		outputGIF = args[1]
	default:
		log.Fatalf("usage: %s [image|WxH] [output.gif]", os.Args[0])
	}

	sim, err := host.NewFromImage(canvas.Image())
	if err != nil && !errors.Is(err, circuit.ErrEmptyRaster) {
		log.Fatalf("wiredlogic: parsing raster: %v", err)
	}

	if outputGIF != "" {
		if err := exportHeadless(sim, outputGIF); err != nil {
			log.Fatalf("wiredlogic: exporting %s: %v", outputGIF, err)
		}
		return
	}

	bounds := canvas.Image().Bounds()
	ebiten.SetWindowSize(bounds.Dx()*4, bounds.Dy()*4)
	ebiten.SetWindowTitle("Wired Logic")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := newApp(canvas, sim, *tickDelay)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}

// parseSize parses a "WxH" argument such as "128x96".
func parseSize(s string) (w, h int, ok bool) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func loadCanvas(path string) *host.Canvas {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("wiredlogic: open %s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("wiredlogic: decode %s: %v", path, err)
	}
	return host.NewCanvasFromImage(img)
}

// exportHeadless renders the circuit's minimal repeating animation and
// writes it as a GIF, implementing the `prog <image> <output.gif>` form of
// spec §6's CLI surface.
func exportHeadless(sim *host.Simulator, out string) error {
	frames, err := sim.LoopFrames(*tickDelay, *maxLoop)
	if err != nil {
		if !errors.Is(err, render.ErrNoLoopFound) {
			return err
		}
		fmt.Fprintf(os.Stderr, "wiredlogic: no repeating state found within %d steps, exporting prefix\n", *maxLoop)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.EncodeGIF(f, frames)
}
