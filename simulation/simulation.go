// Package simulation advances a circuit.Circuit's charge vector one tick at
// a time according to the deterministic propagation rule of spec §4.3.
package simulation

import (
	"crypto/sha1"
	"encoding/binary"
	"log"

	"github.com/wirelogic/wired-logic/circuit"
)

// Step advances c's charge vector by exactly one tick. All reads observe
// the pre-step snapshot; the new vector is computed into a scratch buffer
// and only then committed, so no wire's update can see another wire's
// already-updated charge within the same tick (spec §4.3, §9).
func Step(c *circuit.Circuit) {
	if len(c.State) != len(c.Wires) {
		log.Panicf("simulation: state vector length %d does not match wire count %d", len(c.State), len(c.Wires))
	}

	next := make([]uint8, len(c.State))
	for i, w := range c.Wires {
		switch {
		case w.IsSource():
			if c.State[i] < circuit.MaxCharge {
				next[i] = c.State[i] + 1
			} else {
				next[i] = circuit.MaxCharge
			}
		default:
			next[i] = relax(c, w, c.State[i])
		}
	}
	copy(c.State, next)
}

// relax computes wire w's next charge from the strongest conducting
// neighbour it can see through its gated transistors.
func relax(c *circuit.Circuit, w *circuit.Wire, current uint8) uint8 {
	source := traceSource(c, w)
	switch {
	case source > current+1:
		return current + 1
	case source <= current && current > 0:
		return current - 1
	default:
		return current
	}
}

// traceSource returns the strongest charge visible to w through any
// transistor whose base is de-energised (charge zero, hence conducting).
func traceSource(c *circuit.Circuit, w *circuit.Wire) uint8 {
	var source uint8
	for _, tid := range w.TransistorIDs() {
		t := c.Transistor(tid)
		if c.State[t.Base()] != 0 {
			continue // base energised: transistor does not conduct
		}
		for _, pin := range t.Pins() {
			if pin == w.ID() {
				continue
			}
			if s := c.State[pin]; s > source {
				source = s
			}
		}
		if source == circuit.MaxCharge {
			break
		}
	}
	return source
}

// Snapshot returns a copy of c's current charge vector.
func Snapshot(c *circuit.Circuit) []uint8 {
	snap := make([]uint8, len(c.State))
	copy(snap, c.State)
	return snap
}

// Hash returns a content hash of c's current charge vector, used by the
// renderer to detect when the simulation has re-entered a previously-seen
// state (spec §4.7).
func Hash(c *circuit.Circuit) [sha1.Size]byte {
	h := sha1.New()
	buf := make([]byte, 5)
	for i, charge := range c.State {
		binary.LittleEndian.PutUint32(buf, uint32(i))
		buf[4] = charge
		if _, err := h.Write(buf); err != nil {
			log.Panicf("simulation: hashing state: %v", err)
		}
	}
	var out [sha1.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
