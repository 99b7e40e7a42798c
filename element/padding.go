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

// Padding writes a non-drawable geometry whose dimensions are
// max(own, children) along each defaulted Size axis, positioned at the
// children's combined bounds origin.
type Padding struct {
	Size    *feature.Size
	Padding *feature.Padding
}

func NewPadding() *Padding {
	return &Padding{Size: feature.NewSize(), Padding: feature.NewPadding()}
}

func (pd *Padding) Features() *feature.Set {
	return feature.NewSet(pd.Size, pd.Padding)
}

func (pd *Padding) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	own, err := pd.Size.ResolveVector(av)
	if err != nil {
		return err
	}

	childBounds := boundsUnionOfChildren(rt, p)
	childSize := childBounds.Size()

	dims := own
	if pd.Size.Unconstrained(geom.AxisX) {
		dims.X = math.Max(own.X, childSize.X)
	}
	if pd.Size.Unconstrained(geom.AxisY) {
		dims.Y = math.Max(own.Y, childSize.Y)
	}
	if pd.Size.Unconstrained(geom.AxisZ) {
		dims.Z = math.Max(own.Z, childSize.Z)
	}

	g := geom.NewGeometry(nil, nil)
	g.Pos = childBounds.Base
	g.Bounds = geom.Bounds{End: dims}
	rt.Update(p, g)
	return nil
}

func (pd *Padding) Clone() Element { return cloneVia(pd) }
