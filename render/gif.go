package render

import (
	"image"
	"image/gif"
	"io"
	"time"

	"github.com/wirelogic/wired-logic/circuit"
	"github.com/wirelogic/wired-logic/simulation"
)

// Frame is one fully-rendered step of a looping animation, paired with the
// delay it should be held on screen.
type Frame struct {
	Image *image.Paletted
	Delay time.Duration
}

// LoopFrames clears c's charge vector to zero, then steps the simulation
// while recording every state until a previously-seen state reappears
// (spec §4.7). It returns exactly the frames of that minimal loop, each
// fully rendered and held for delay. If no state repeats within maxSteps
// ticks, it returns the whole prefix recorded so far together with
// ErrNoLoopFound; maxSteps <= 0 means unbounded. c is left holding the
// state of the final returned frame.
func LoopFrames(c *circuit.Circuit, delay time.Duration, maxSteps int) ([]Frame, error) {
	c.Reset()

	seen := map[[20]byte]int{}
	snapshots := [][]uint8{simulation.Snapshot(c)}
	seen[simulation.Hash(c)] = 0

	step := 0
	for {
		if maxSteps > 0 && step >= maxSteps {
			return snapshotsToFrames(c, snapshots, delay), ErrNoLoopFound
		}
		simulation.Step(c)
		step++

		h := simulation.Hash(c)
		if start, ok := seen[h]; ok {
			return snapshotsToFrames(c, snapshots[start:], delay), nil
		}
		seen[h] = step
		snapshots = append(snapshots, simulation.Snapshot(c))
	}
}

func snapshotsToFrames(c *circuit.Circuit, snapshots [][]uint8, delay time.Duration) []Frame {
	frames := make([]Frame, len(snapshots))
	for i, snap := range snapshots {
		c.State = snap
		canvas := newCanvas(c)
		Draw(c, canvas)
		frames[i] = Frame{Image: canvas, Delay: delay}
	}
	return frames
}

// EncodeGIF writes frames as a standard animated GIF, one image per frame
// held for its Delay (truncated down to the GIF format's 1/100s granularity).
func EncodeGIF(w io.Writer, frames []Frame) error {
	out := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, f := range frames {
		out.Image[i] = f.Image
		out.Delay[i] = int(f.Delay / (10 * time.Millisecond))
	}
	return gif.EncodeAll(w, out)
}
