// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/colorx"
	"github.com/cogentcore-labs/scenelayout/config"
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
)

func TestDefaultFillsEveryField(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 1e-9, c.UnitEpsilon)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadBytesOverridesOnlyGivenFields(t *testing.T) {
	c, err := config.LoadBytes([]byte(`
unit_epsilon = 1e-6
log_level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, c.UnitEpsilon)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 0.0, c.DefaultSpacing)
}

func TestLoadBytesRejectsUnknownLogLevelOnApply(t *testing.T) {
	c, err := config.LoadBytes([]byte(`log_level = "verbose"`))
	require.NoError(t, err)
	err = c.Apply()
	assert.Error(t, err)
}

func TestApplyInstallsUnitEpsilon(t *testing.T) {
	defer func() { geom.Epsilon = 1e-9 }()

	c, err := config.LoadBytes([]byte(`unit_epsilon = 0.5`))
	require.NoError(t, err)
	require.NoError(t, c.Apply())
	assert.Equal(t, 0.5, geom.Epsilon)
}

func TestApplyInstallsDefaultSpacing(t *testing.T) {
	defer func() { feature.DefaultSpacingValue = 0 }()

	c, err := config.LoadBytes([]byte(`default_spacing = 2.5`))
	require.NoError(t, err)
	require.NoError(t, c.Apply())
	assert.Equal(t, 2.5, feature.DefaultSpacingValue)

	s := feature.NewSpacing()
	assert.True(t, s.Spacing.Defaulted())
	v, err := s.Spacing.Eval(nil, "spacing")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestApplyInstallsPaletteOverrides(t *testing.T) {
	c, err := config.LoadBytes([]byte(`
[palette_overrides]
blue5 = "(1, 2, 3)"
`))
	require.NoError(t, err)
	require.NoError(t, c.Apply())

	col, ok := colorx.Named("blue5")
	require.True(t, ok)
	assert.Equal(t, uint8(1), col.R)
	assert.Equal(t, uint8(2), col.G)
	assert.Equal(t, uint8(3), col.B)
}
