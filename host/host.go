// Package host is the thin façade any UI (windowed app, CLI, web binding)
// binds against, per spec §6. It owns a circuit.Circuit and the raster
// bounds it was built from, and serialises every mutation through itself so
// a caller can never interleave a paint with a step.
package host

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/raster"
	"github.com/wirelogic/wired-logic/render"
	"github.com/wirelogic/wired-logic/simulation"
)

// Simulator is the external interface of spec §6.
type Simulator struct {
	grid    *raster.Grid
	circuit *circuit.Circuit
}

// NewFromImage builds a Simulator from a raster. A raster with no wire
// material still yields a usable Simulator with zero wires, returned
// together with circuit.ErrEmptyRaster.
func NewFromImage(img image.Image) (*Simulator, error) {
	s := &Simulator{}
	err := s.Update(img)
	if err != nil && !errors.Is(err, circuit.ErrEmptyRaster) {
		return nil, err
	}
	return s, err
}

// Circuit exposes the underlying graph for callers that need it (e.g. a
// host drawing transistor positions as an edit overlay).
func (s *Simulator) Circuit() *circuit.Circuit { return s.circuit }

// Step advances the simulation by exactly one tick.
func (s *Simulator) Step() { simulation.Step(s.circuit) }

// Reset sets every wire's charge to zero.
func (s *Simulator) Reset() { s.circuit.Reset() }

// Render paints the circuit's current charges onto dst.
func (s *Simulator) Render(dst draw.Image) { render.Draw(s.circuit, dst) }

// ExportTemplate paints the circuit in its "off" state onto dst, suitable
// for saving as a reloadable template.
func (s *Simulator) ExportTemplate(dst draw.Image) { render.ExportTemplate(s.circuit, dst) }

// Update rebuilds the wire/transistor graph and charge vector from img,
// discarding all prior simulation state (spec §4.8, §6).
func (s *Simulator) Update(img image.Image) error {
	grid := raster.New(img)
	c, err := circuit.BuildGrid(grid)
	if err != nil && !errors.Is(err, circuit.ErrEmptyRaster) {
		return err
	}
	s.grid = grid
	s.circuit = c
	return err
}

// At classifies the pixel at (x,y) as Void or Wire, per spec §6. A
// transistor cell classifies as Void: it carries no charge of its own.
func (s *Simulator) At(x, y int) raster.Kind {
	if s.grid.WireMaterial(x, y) {
		return raster.Wire
	}
	return raster.Void
}

// AtColor reports the colour a host should show for (x,y): Void, or the
// Charge colour of whichever wire (if any) occupies it.
func (s *Simulator) AtColor(x, y int) color.Color {
	id, ok := s.grid.WireID(x, y)
	if !ok {
		return raster.Void
	}
	return raster.Charge[s.circuit.State[id]]
}

// LoopFrames exports the minimal repeating animation of the circuit,
// starting from a zeroed charge vector (spec §4.7). The Simulator's own
// state ends up at the final exported frame's state; callers that need to
// keep simulating interactively afterwards should call Reset first.
func (s *Simulator) LoopFrames(delay time.Duration, maxSteps int) ([]render.Frame, error) {
	return render.LoopFrames(s.circuit, delay, maxSteps)
}
