// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/value"
)

func TestLiteral(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("10"))
	assert.False(t, v.IsRelative())
	assert.False(t, v.IsPercentage)
	got, err := v.Eval(value.NewAncestorValues(), "width")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestRelativeToAncestor(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("2width"))
	av := value.NewAncestorValues()
	av.SetFloat("width", 5)
	got, err := v.Eval(av, "width")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestOwnPercentage(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("90%"))
	av := value.NewAncestorValues()
	av.SetFloat("width", 200)
	got, err := v.Eval(av, "width")
	require.NoError(t, err)
	assert.Equal(t, 180.0, got)
}

func TestRelativePercentage(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("0.5height%"))
	av := value.NewAncestorValues()
	av.SetFloat("width", 100)
	av.SetFloat("height", 40)
	got, err := v.Eval(av, "width")
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)
}

func TestPercentageWithoutNumberFails(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	err := v.SetString("%")
	assert.Error(t, err)
}

func TestMissingAncestor(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("2height"))
	_, err := v.Eval(value.NewAncestorValues(), "width")
	assert.Error(t, err)
}

func TestTypeMismatch(t *testing.T) {
	av := value.NewAncestorValues()
	av.Set("width", value.Entry{Kind: value.KindBool, Bool: true})
	_, err := av.GetFloat("width")
	assert.Error(t, err)
}

func TestTransactionalSetLeavesOldValueOnFailure(t *testing.T) {
	v := value.NewRelativeFloat("width", "w", 1)
	require.NoError(t, v.SetString("10"))
	err := v.SetString("%")
	assert.Error(t, err)
	got, _ := v.Eval(value.NewAncestorValues(), "width")
	assert.Equal(t, 10.0, got)
}
