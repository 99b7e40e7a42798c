// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Color is an 8-bit RGB triple with a float alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// ColorBlack is the default colour for a freshly constructed Geometry.
var ColorBlack = Color{0, 0, 0, 1}

// WithOpacity returns a copy of c with alpha multiplied by opacity
// (clamped to [0,1]).
func (c Color) WithOpacity(opacity float64) Color {
	a := c.A * opacity
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = a
	return c
}

// Darken scales the RGB channels by (1 - darkness), clamped to [0,1].
func (c Color) Darken(darkness float64) Color {
	if darkness < 0 {
		darkness = 0
	}
	if darkness > 1 {
		darkness = 1
	}
	scale := 1 - darkness
	scaleChan := func(v uint8) uint8 {
		out := float64(v) * scale
		if out < 0 {
			out = 0
		}
		if out > 255 {
			out = 255
		}
		return uint8(out)
	}
	c.R = scaleChan(c.R)
	c.G = scaleChan(c.G)
	c.B = scaleChan(c.B)
	return c
}

// Equal reports exact equality.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B && c.A == other.A
}
