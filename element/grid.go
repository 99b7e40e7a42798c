// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"math"

	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Grid arranges children in a square on the XZ plane: diameter =
// ceil(sqrt(n)); per-column max width and per-row max depth define column
// and row offsets; Spacing is added between rows and columns. Child order
// is preserved (row-major).
type Grid struct {
	Spacing *feature.Spacing
}

func NewGrid() *Grid {
	return &Grid{Spacing: feature.NewSpacing()}
}

func (gr *Grid) Features() *feature.Set {
	return feature.NewSet(gr.Spacing)
}

func (gr *Grid) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	spacing, err := gr.Spacing.Spacing.Eval(av, "spacing")
	if err != nil {
		return err
	}

	children := rt.ChildrenOf(p)
	n := len(children)
	if n == 0 {
		rt.Update(p, nonDrawableGeometry(geom.EmptyBounds))
		return nil
	}
	diameter := int(math.Ceil(math.Sqrt(float64(n))))

	rowMaxDepth := make([]float64, diameter)
	colMaxWidth := make([]float64, diameter)
	sizes := make([]geom.Vector3, n)
	for i, c := range children {
		row, col := i/diameter, i%diameter
		size := rt.PositionedBoundsOf(c).Size()
		sizes[i] = size
		if size.Z > rowMaxDepth[row] {
			rowMaxDepth[row] = size.Z
		}
		if size.X > colMaxWidth[col] {
			colMaxWidth[col] = size.X
		}
	}

	rowOffset := make([]float64, diameter)
	for r := 1; r < diameter; r++ {
		rowOffset[r] = rowOffset[r-1] + rowMaxDepth[r-1] + spacing
	}
	colOffset := make([]float64, diameter)
	for c := 1; c < diameter; c++ {
		colOffset[c] = colOffset[c-1] + colMaxWidth[c-1] + spacing
	}

	for i, c := range children {
		row, col := i/diameter, i%diameter
		target := geom.Vec3(colOffset[col], 0, rowOffset[row])
		bounds := rt.PositionedBoundsOf(c)
		delta := target.Sub(geom.Vec3(bounds.Base.X, 0, bounds.Base.Z))
		if delta != (geom.Vector3{}) {
			rt.MoveParentAndDescendantsBy(c, delta, nil, false)
		}
	}

	rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
	return nil
}

func (gr *Grid) Clone() Element { return cloneVia(gr) }
