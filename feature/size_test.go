// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/value"
)

func TestSizeDefaults(t *testing.T) {
	s := feature.NewSize()
	w, h, d, err := s.Resolve(value.NewAncestorValues())
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 1.0, h)
	assert.Equal(t, 1.0, d)
}

func TestSizeCrossReference(t *testing.T) {
	s := feature.NewSize()
	require.NoError(t, s.Height.SetString("20"))
	require.NoError(t, s.Width.SetString("2height"))
	w, h, _, err := s.Resolve(value.NewAncestorValues())
	require.NoError(t, err)
	assert.Equal(t, 20.0, h)
	assert.Equal(t, 40.0, w)
}

func TestSizeCycleFails(t *testing.T) {
	s := feature.NewSize()
	require.NoError(t, s.Width.SetString("1height"))
	require.NoError(t, s.Height.SetString("1width"))
	_, _, _, err := s.Resolve(value.NewAncestorValues())
	assert.Error(t, err)
}

func TestColorComputeDarkens(t *testing.T) {
	c := feature.NewColor()
	require.NoError(t, c.Color.SetFromString("RGBA(200,200,200,1)"))
	require.NoError(t, c.Darkness.SetFromString("0.5"))
	out := c.ComputeColor(1)
	assert.Less(t, int(out.R), 200)
}
