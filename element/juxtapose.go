// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Juxtapose lays children out consecutively along Axis: each child is
// moved so its bottom-left aligns with a running offset, which then
// advances by the child's length along that axis plus Spacing. If the
// axis's own Size component is explicitly set, the chain is re-centred
// within that length; if Align is set, children are aligned across each
// of the two cross axes relative to the element's own (possibly defaulted)
// Size component for that axis.
type Juxtapose struct {
	Axis    *feature.AxisFeature
	Spacing *feature.Spacing
	Size    *feature.Size
	Align   *feature.Align
}

func NewJuxtapose() *Juxtapose {
	return &Juxtapose{
		Axis:    feature.NewAxisFeature(),
		Spacing: feature.NewSpacing(),
		Size:    feature.NewSize(),
		Align:   feature.NewAlign(),
	}
}

func (j *Juxtapose) Features() *feature.Set {
	return feature.NewSet(j.Axis, j.Spacing, j.Size, j.Align)
}

func (j *Juxtapose) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	axis := j.Axis.Axis.Value
	spacing, err := j.Spacing.Spacing.Eval(av, "spacing")
	if err != nil {
		return err
	}
	ownSize, err := j.Size.ResolveVector(av)
	if err != nil {
		return err
	}

	children := rt.ChildrenOf(p)
	offset := 0.0
	for _, c := range children {
		b := rt.PositionedBoundsOf(c)
		delta := offset - b.Base.Component(axis)
		if delta != 0 {
			rt.MoveParentAndDescendantsBy(c, vecOnAxis(axis, delta), nil, false)
		}
		length := rt.PositionedBoundsOf(c).Size().Component(axis)
		offset += length + spacing
	}
	totalLen := 0.0
	if len(children) > 0 {
		totalLen = offset - spacing
	}

	if axisCell := sizeCellForAxis(j.Size, axis); axisCell != nil && !axisCell.Defaulted() {
		target := ownSize.Component(axis)
		shift := (target - totalLen) / 2
		if shift != 0 {
			for _, c := range children {
				rt.MoveParentAndDescendantsBy(c, vecOnAxis(axis, shift), nil, false)
			}
		}
	}

	if !j.Align.Align.Defaulted() {
		align := j.Align.Align.Value
		for _, cross := range crossAxesFor(axis) {
			refSize := ownSize.Component(cross)
			for _, c := range children {
				cb := rt.PositionedBoundsOf(c)
				childLen := cb.Size().Component(cross)
				var target float64
				switch align {
				case geom.AlignStart:
					target = 0
				case geom.AlignCenter:
					target = (refSize - childLen) / 2
				case geom.AlignEnd:
					target = refSize - childLen
				}
				delta := target - cb.Base.Component(cross)
				if delta != 0 {
					rt.MoveParentAndDescendantsBy(c, vecOnAxis(cross, delta), nil, false)
				}
			}
		}
	}

	rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
	return nil
}

func (j *Juxtapose) Clone() Element { return cloneVia(j) }
