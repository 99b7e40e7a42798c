// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/element"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

func renderBox(t *testing.T, rt *rendertree.RenderTree, p path.Path, w, h, d float64) {
	t.Helper()
	b := element.NewBox()
	require.NoError(t, b.Size.Width.SetString(strconv.FormatFloat(w, 'f', -1, 64)))
	require.NoError(t, b.Size.Height.SetString(strconv.FormatFloat(h, 'f', -1, 64)))
	require.NoError(t, b.Size.Depth.SetString(strconv.FormatFloat(d, 'f', -1, 64)))
	require.NoError(t, b.Render(p, rt, value.NewAncestorValues()))
}

func TestBoxRenderWritesVertexAndBounds(t *testing.T) {
	rt := rendertree.New()
	p, _ := path.Parse(".a")
	renderBox(t, rt, p, 2, 3, 4)
	g, ok := rt.Get(p)
	require.True(t, ok)
	assert.Len(t, g.Vertices, 8)
	assert.Equal(t, geom.Vec3(2, 3, 4), g.Bounds.Size())
}

func TestGridArrangesFourUnitBoxes(t *testing.T) {
	rt := rendertree.New()
	parent, _ := path.Parse(".g")
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		renderBox(t, rt, parent.AppendPart(n), 1, 1, 1)
	}

	g := element.NewGrid()
	require.NoError(t, g.Spacing.Spacing.SetString("1"))
	require.NoError(t, g.Render(parent, rt, value.NewAncestorValues()))

	want := []geom.Vector3{
		geom.Vec3(0, 0, 0), geom.Vec3(2, 0, 0), geom.Vec3(0, 0, 2), geom.Vec3(2, 0, 2),
	}
	for i, n := range names {
		cg, ok := rt.Get(parent.AppendPart(n))
		require.True(t, ok)
		assert.True(t, want[i].Equal(cg.Pos), "child %s: want %v got %v", n, want[i], cg.Pos)
	}
}

func TestJuxtaposeAlongXWithAlignCenter(t *testing.T) {
	rt := rendertree.New()
	parent, _ := path.Parse(".j")
	renderBox(t, rt, parent.AppendPart("a"), 1, 1, 1)
	renderBox(t, rt, parent.AppendPart("b"), 2, 2, 2)
	renderBox(t, rt, parent.AppendPart("c"), 1, 1, 1)

	j := element.NewJuxtapose()
	require.NoError(t, j.Axis.Axis.SetFromString("x"))
	require.NoError(t, j.Align.Align.SetFromString("center"))
	require.NoError(t, j.Render(parent, rt, value.NewAncestorValues()))

	ga, _ := rt.Get(parent.AppendPart("a"))
	gb, _ := rt.Get(parent.AppendPart("b"))
	gc, _ := rt.Get(parent.AppendPart("c"))
	assert.True(t, geom.Vec3(0, 0, 0).Equal(ga.Pos))
	assert.True(t, geom.Vec3(1, 0, -0.5).Equal(gb.Pos))
	assert.True(t, geom.Vec3(3, 0, 0).Equal(gc.Pos))
}

func TestScaleFactorSingleConstrainedAxis(t *testing.T) {
	s := element.NewScale()
	require.NoError(t, s.Size.Width.SetString("2"))
	factor := s.Factor(geom.Vec3(2, 1, 1), geom.Vec3(4, 1, 1))
	assert.InDelta(t, 0.5, factor, 1e-9)
}

func TestScaleFactorWithAxisOverride(t *testing.T) {
	s := element.NewScale()
	require.NoError(t, s.Axis.Axis.SetFromString("z"))
	require.NoError(t, s.Size.Depth.SetString("3"))
	factor := s.Factor(geom.Vec3(1, 1, 3), geom.Vec3(1, 1, 6))
	assert.InDelta(t, 0.5, factor, 1e-9)
}

func TestNoLayoutRendersNothing(t *testing.T) {
	rt := rendertree.New()
	p, _ := path.Parse(".n")
	n := element.NewNoLayout()
	require.NoError(t, n.Render(p, rt, value.NewAncestorValues()))
	_, ok := rt.Get(p)
	assert.False(t, ok)
}
