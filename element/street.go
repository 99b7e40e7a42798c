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

// Street treats its last child as the street itself and every preceding
// child as a house: houses are arranged in ceil(n/2) rows of 2 columns
// flanking the street, rows spaced apart by Spacing along Axis; across
// the street, the near column ends where the street begins (set back by
// its own widest house) and the far column starts at the street's width,
// with no Spacing between columns and street (using the engine's legacy
// OppositeAxis table, since Street is the one consumer
// that table is defined for — see DESIGN.md, Open Question 3). The street
// is stretched along Axis to span every row, and far-side houses are
// yawed 180 degrees to face back towards the street.
type Street struct {
	Axis    *feature.AxisFeature
	Spacing *feature.Spacing
}

func NewStreet() *Street {
	return &Street{Axis: feature.NewAxisFeature(), Spacing: feature.NewSpacing()}
}

func (s *Street) Features() *feature.Set {
	return feature.NewSet(s.Axis, s.Spacing)
}

func (s *Street) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	axis := s.Axis.Axis.Value
	spacing, err := s.Spacing.Spacing.Eval(av, "spacing")
	if err != nil {
		return err
	}

	children := rt.ChildrenOf(p)
	if len(children) == 0 {
		rt.Update(p, nonDrawableGeometry(geom.EmptyBounds))
		return nil
	}

	streetPath := children[len(children)-1]
	houses := children[:len(children)-1]
	if len(houses) == 0 {
		rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
		return nil
	}

	perp := geom.OppositeAxis(axis)
	rows := (len(houses) + 1) / 2

	var colWidth [2]float64
	var axisLen [2][]float64
	axisLen[0] = make([]float64, rows)
	axisLen[1] = make([]float64, rows)
	for i, h := range houses {
		row, col := i/2, i%2
		size := rt.PositionedBoundsOf(h).Size()
		axisLen[col][row] = size.Component(axis)
		if w := size.Component(perp); w > colWidth[col] {
			colWidth[col] = w
		}
	}

	// Each column accumulates its own per-row axis lengths (the original's
	// per_axis_value_lengths[col]), not a length shared across both columns:
	// a column of shorter houses packs tighter along the axis than the
	// other column's rows.
	var rowOffset [2][]float64
	var totalAxisLen float64
	for col := 0; col < 2; col++ {
		rowOffset[col] = make([]float64, rows)
		for r := 1; r < rows; r++ {
			rowOffset[col][r] = rowOffset[col][r-1] + axisLen[col][r-1] + spacing
		}
		if end := rowOffset[col][rows-1] + axisLen[col][rows-1]; end > totalAxisLen {
			totalAxisLen = end
		}
	}

	streetWidth := rt.PositionedBoundsOf(streetPath).Size().Component(perp)
	colPerpOffset := [2]float64{
		-colWidth[0],
		streetWidth,
	}

	for i, h := range houses {
		row, col := i/2, i%2
		b := rt.PositionedBoundsOf(h)
		delta := vecOnAxis(axis, rowOffset[col][row]-b.Base.Component(axis)).
			Add(vecOnAxis(perp, colPerpOffset[col]-b.Base.Component(perp)))
		if delta != (geom.Vector3{}) {
			rt.MoveParentAndDescendantsBy(h, delta, nil, false)
		}
		if col == 1 {
			rt.RotatePathsInPlace([]path.Path{h}, geom.FromYawPitchRoll(180, 0, 0))
		}
	}

	streetActual := rt.PositionedBoundsOf(streetPath).Size().Component(axis)
	if streetActual != 0 && math.Abs(streetActual-totalAxisLen) > 1e-9 {
		scaleFactor := totalAxisLen / streetActual
		factor := geom.Vec3(1, 1, 1).WithComponent(axis, scaleFactor)
		rt.ScaleParentAndDescendantsBy(streetPath, factor)
	}

	rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
	return nil
}

func (s *Street) Clone() Element { return cloneVia(s) }
