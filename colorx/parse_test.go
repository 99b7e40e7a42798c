// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/colorx"
)

func TestParseNamed(t *testing.T) {
	c, err := colorx.Parse("blue5")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.A)
}

func TestNamedMatchesOriginalPaletteVerbatim(t *testing.T) {
	// Spot-check a few shades against the original engine's literal
	// color_map table (src/color.cpp) rather than a derived approximation.
	cases := map[string][3]uint8{
		"gray0":  {248, 249, 250},
		"red9":   {201, 42, 42},
		"blue6":  {34, 139, 230},
		"teal3":  {99, 230, 190},
		"orange9": {217, 72, 15},
	}
	for name, want := range cases {
		c, ok := colorx.Named(name)
		require.True(t, ok, name)
		assert.Equal(t, want[0], c.R, "%s.R", name)
		assert.Equal(t, want[1], c.G, "%s.G", name)
		assert.Equal(t, want[2], c.B, "%s.B", name)
	}
}

func TestParseRGBAFunctional(t *testing.T) {
	c, err := colorx.Parse("RGBA(10, 20, 30, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(30), c.B)
	assert.InDelta(t, 0.5, c.A, 1e-9)
}

func TestParseBareTuple(t *testing.T) {
	c, err := colorx.Parse("(1, 2, 3)")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), c.R)
	assert.Equal(t, 1.0, c.A)
}

func TestParseInvalid(t *testing.T) {
	_, err := colorx.Parse("notacolor")
	assert.ErrorIs(t, err, colorx.ErrInvalidColor)

	_, err = colorx.Parse("RGBA(300, 0, 0)")
	assert.ErrorIs(t, err, colorx.ErrInvalidColor)
}
