// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rendertree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
)

func box(x, y, z float64) geom.Geometry {
	g := geom.NewGeometry([]geom.Vector3{geom.Vec3(0, 0, 0), geom.Vec3(1, 1, 1)}, nil)
	g.Pos = geom.Vec3(x, y, z)
	return g
}

func TestUpdateTracksInsertionOrderOnce(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	rt.Update(a, box(0, 0, 0))
	rt.Update(a, box(1, 0, 0))
	assert.Equal(t, 1, rt.Size())
	g, ok := rt.Get(a)
	require.True(t, ok)
	assert.Equal(t, geom.Vec3(1, 0, 0), g.Pos)
}

func TestChildrenOfAndDescendantsOf(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	ab, _ := path.Parse(".a.b")
	abc, _ := path.Parse(".a.b.c")
	rt.Update(a, box(0, 0, 0))
	rt.Update(ab, box(0, 0, 0))
	rt.Update(abc, box(0, 0, 0))

	children := rt.ChildrenOf(a)
	require.Len(t, children, 1)
	assert.True(t, children[0].Equal(ab))

	descendants := rt.DescendantsOf(a, true)
	assert.Len(t, descendants, 3)
}

func TestMoveParentAndDescendantsByOffsetsEverything(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	ab, _ := path.Parse(".a.b")
	rt.Update(a, box(0, 0, 0))
	rt.Update(ab, box(1, 0, 0))

	rt.MoveParentAndDescendantsBy(a, geom.Vec3(5, 0, 0), nil, false)
	ga, _ := rt.Get(a)
	gb, _ := rt.Get(ab)
	assert.Equal(t, geom.Vec3(5, 0, 0), ga.Pos)
	assert.Equal(t, geom.Vec3(6, 0, 0), gb.Pos)
}

func TestMoveParentAndDescendantsByExcludesSubtree(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	ab, _ := path.Parse(".a.b")
	ac, _ := path.Parse(".a.c")
	rt.Update(a, box(0, 0, 0))
	rt.Update(ab, box(0, 0, 0))
	rt.Update(ac, box(0, 0, 0))

	rt.MoveParentAndDescendantsBy(a, geom.Vec3(1, 0, 0), &ab, false)
	ga, _ := rt.Get(a)
	gb, _ := rt.Get(ab)
	gc, _ := rt.Get(ac)
	assert.Equal(t, geom.Vec3(1, 0, 0), ga.Pos)
	assert.Equal(t, geom.Vec3(0, 0, 0), gb.Pos)
	assert.Equal(t, geom.Vec3(1, 0, 0), gc.Pos)
}

func TestPositionedBoundsOfUnionsDescendants(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	ab, _ := path.Parse(".a.b")
	rt.Update(a, box(0, 0, 0))
	rt.Update(ab, box(5, 0, 0))

	b := rt.PositionedBoundsOf(a)
	assert.Equal(t, geom.Vec3(0, 0, 0), b.Base)
	assert.Equal(t, geom.Vec3(6, 1, 1), b.End)
}

func TestDifferencesFromDetectsAddRemoveMove(t *testing.T) {
	before := rendertree.New()
	a, _ := path.Parse(".a")
	before.Update(a, box(0, 0, 0))

	after := before.Clone()
	moved := box(0, 0, 0)
	moved.Pos = geom.Vec3(1, 0, 0)
	after.Update(a, moved)
	b, _ := path.Parse(".b")
	after.Update(b, box(0, 0, 0))

	diffs := after.DifferencesFrom(before)
	var gotMove, gotAdd bool
	for _, d := range diffs {
		if d.Kind == rendertree.DiffPos && d.Path.Equal(a) {
			gotMove = true
		}
		if d.Kind == rendertree.SecondMissing && d.Path.Equal(b) {
			gotAdd = true
		}
	}
	assert.True(t, gotMove)
	assert.True(t, gotAdd)
}

func TestDifferencesFromDetectsRemoval(t *testing.T) {
	before := rendertree.New()
	a, _ := path.Parse(".a")
	before.Update(a, box(0, 0, 0))

	after := rendertree.New()

	diffs := after.DifferencesFrom(before)
	require.Len(t, diffs, 1)
	assert.Equal(t, rendertree.FirstMissing, diffs[0].Kind)
}

func TestInvalidateParentAndChildPosClearsEverything(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	ab, _ := path.Parse(".a.b")
	rt.Update(a, box(0, 0, 0))
	rt.Update(ab, box(0, 0, 0))

	rt.InvalidateParentAndChildPos(a)
	assert.Equal(t, 0, rt.Size())
}

func TestRotateParentAndDescendantsInPlaceKeepsBottomLeft(t *testing.T) {
	rt := rendertree.New()
	a, _ := path.Parse(".a")
	g := geom.NewGeometry([]geom.Vector3{geom.Vec3(0, 0, 0), geom.Vec3(1, 1, 1)}, nil)
	g.Pos = geom.Vec3(5, 0, 5)
	rt.Update(a, g)

	before := rt.PositionedBoundsOf(a)
	rt.RotateParentAndDescendantsInPlace(a, geom.FromYawPitchRoll(90, 0, 0))
	after := rt.PositionedBoundsOf(a)

	assert.True(t, before.Base.Equal(after.Base))
}
