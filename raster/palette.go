// Package raster classifies a raw RGBA raster into the void/wire/transistor
// cells the topology builder operates on (spec §4.1).
package raster

import "image/color"

// MaxCharge is the highest charge level a wire can hold.
const MaxCharge = 6

// Void is the background colour: anything not matching a CHARGE level.
var Void = color.RGBA{0x00, 0x00, 0x00, 0xff}

// Charge holds the fixed, bit-exact palette for charge levels 0..=MaxCharge.
// Charge[i] is the colour a wire at charge i is painted.
var Charge = [MaxCharge + 1]color.RGBA{
	{0x88, 0x00, 0x00, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0x22, 0x00, 0xff},
	{0xff, 0x44, 0x00, 0xff},
	{0xff, 0x66, 0x00, 0xff},
	{0xff, 0x88, 0x00, 0xff},
	{0xff, 0xaa, 0x00, 0xff},
}

// LevelOf reports the charge level encoded by c, and whether c is wire
// material at all (i.e. matches some Charge[i] exactly).
func LevelOf(c color.Color) (level uint8, ok bool) {
	r, g, b, a := rgba8(c)
	for i, cc := range Charge {
		if cc.R == r && cc.G == g && cc.B == b && cc.A == a {
			return uint8(i), true
		}
	}
	return 0, false
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
