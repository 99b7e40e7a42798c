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

// Scale computes a uniform factor from target (its own Size) versus actual
// (its children's combined bounds), over whichever axes are constrained
// (explicitly set, not defaulted) — or a single axis alone if its Axis
// feature is set — then scales every child subtree in place by that
// factor.
type Scale struct {
	Size *feature.Size
	Axis *feature.AxisFeature
}

func NewScale() *Scale {
	return &Scale{Size: feature.NewSize(), Axis: feature.NewAxisFeature()}
}

func (s *Scale) Features() *feature.Set {
	return feature.NewSet(s.Size, s.Axis)
}

// Factor exposes compute_scale_factor directly (Testable Property 8.8
// exercises this without requiring a full render).
func (s *Scale) Factor(target, actual geom.Vector3) float64 {
	var axisOverride *geom.Axis
	if !s.Axis.Axis.Defaulted() {
		a := s.Axis.Axis.Value
		axisOverride = &a
	}
	return computeScaleFactor(target, actual, s.Size, axisOverride)
}

func (s *Scale) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	target, err := s.Size.ResolveVector(av)
	if err != nil {
		return err
	}

	actualBounds := boundsUnionOfChildren(rt, p)
	factor := s.Factor(target, actualBounds.Size())
	factorVec := geom.Vec3(factor, factor, factor)

	for _, c := range rt.ChildrenOf(p) {
		rt.ScaleParentAndDescendantsBy(c, factorVec)
	}

	rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
	return nil
}

func (s *Scale) Clone() Element { return cloneVia(s) }
