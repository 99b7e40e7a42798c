// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element implements the declarative element kinds a Node in the
// scene tree carries: Box, Plane, Sphere, Cylinder, Obj, Grid, Scale,
// HideShow, Rotate, Juxtapose, Padding, Street, and NoLayout. Each composes
// a feature.Set and implements Render, which a Node-tree walk calls
// bottom-up (children before parents) once every descendant geometry is
// already present in the RenderTree.
package element

import (
	"math"

	"github.com/jinzhu/copier"

	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Element is the behaviour every node payload implements.
type Element interface {
	// Features returns the composed feature.Set this element reads its
	// attributes through (for UpdateFromAttributes/Attributes forwarding
	// and for contributing to AncestorValues on the way down).
	Features() *feature.Set

	// Render runs on the way back up, after every descendant path of p is
	// already present in rt. av holds the values exported by p's
	// ancestors (not p's own exports — those were already folded into the
	// AncestorValues clone passed down to p's children during descent).
	Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error

	// Clone returns a deep copy, used when a Node is cloned from a
	// template or duplicated.
	Clone() Element
}

// cloneVia deep-copies src into a freshly allocated *T using copier, the
// way Node.Clone uses it for the element payload (see SPEC_FULL.md §4.5).
func cloneVia[T any](src *T) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic("element: clone: " + err.Error())
	}
	return dst
}

// drawableGeometry assembles a Geometry from generated mesh data plus the
// common Color/Optics/HideShow/Text features every drawable primitive
// shares.
func drawableGeometry(
	verts []geom.Vector3, tris []geom.Triangle,
	color *feature.Color, optics *feature.Optics, hideShow *feature.HideShow, text *feature.Text,
	av *value.AncestorValues,
) (geom.Geometry, error) {
	g := geom.NewGeometry(verts, tris)
	if color != nil {
		opacity := 1.0
		if optics != nil {
			opacity = float64(optics.Opacity.Value)
		}
		g.Color = color.ComputeColor(opacity)
	}
	if text != nil {
		g.Text = text.Text.Value
	}
	if hideShow != nil {
		hd, err := hideShow.HideDistance.Eval(av, "hide_distance")
		if err != nil {
			return geom.Geometry{}, err
		}
		sd, err := hideShow.ShowDistance.Eval(av, "show_distance")
		if err != nil {
			return geom.Geometry{}, err
		}
		g.HideDistance = hd
		g.ShowDistance = sd
	}
	return g, nil
}

// nonDrawableGeometry writes an empty-vertex geometry summarising bounds,
// the pattern layout-only elements (Juxtapose, Grid, Street, Rotate, Scale,
// HideShow) use
// to publish their aggregate extent without contributing any mesh.
func nonDrawableGeometry(bounds geom.Bounds) geom.Geometry {
	g := geom.NewGeometry(nil, nil)
	g.Pos = bounds.Base
	g.Bounds = geom.Bounds{End: bounds.Size()}
	return g
}

func boundsUnionOfChildren(rt *rendertree.RenderTree, p path.Path) geom.Bounds {
	var b geom.Bounds
	for _, c := range rt.ChildrenOf(p) {
		b = b.Union(rt.PositionedBoundsOf(c))
	}
	return b
}

func vecOnAxis(a geom.Axis, v float64) geom.Vector3 {
	return geom.Vector3{}.WithComponent(a, v)
}

// crossAxesFor returns the perpendicular axes Juxtapose alignment operates
// on for main axis a. Along X or Z, only the other ground-plane axis is
// aligned; along Y there are two perpendicular axes (X and Z both), so both
// get aligned.
func crossAxesFor(a geom.Axis) []geom.Axis {
	switch a {
	case geom.AxisX:
		return []geom.Axis{geom.AxisZ}
	case geom.AxisZ:
		return []geom.Axis{geom.AxisX}
	default:
		return []geom.Axis{geom.AxisX, geom.AxisZ}
	}
}

func sizeCellForAxis(s *feature.Size, a geom.Axis) *value.RelativeFloat {
	switch a {
	case geom.AxisX:
		return s.Width
	case geom.AxisY:
		return s.Height
	case geom.AxisZ:
		return s.Depth
	}
	return nil
}

func sizeNameForAxis(a geom.Axis) string {
	switch a {
	case geom.AxisX:
		return "width"
	case geom.AxisY:
		return "height"
	case geom.AxisZ:
		return "depth"
	}
	return "width"
}

// computeScaleFactor implements Scale/Obj's compute_scale_factor: the ratio
// target/actual, minimized over every axis whose Size cell was explicitly
// set (not defaulted), or the single given axis alone when axisOverride is
// non-nil. See DESIGN.md, Open Question 4, for why this resolves the
// spec's width/depth ambiguity by implementing the behaviour its own
// Testable Property 8.8 requires rather than the literal (and
// self-contradictory) "isnormal(depth) in the width branch" description.
func computeScaleFactor(target, actual geom.Vector3, size *feature.Size, axisOverride *geom.Axis) float64 {
	if axisOverride != nil {
		t := target.Component(*axisOverride)
		a := actual.Component(*axisOverride)
		if a == 0 {
			return 1
		}
		return t / a
	}

	factor := math.Inf(1)
	consider := func(axis geom.Axis) {
		if size.Unconstrained(axis) {
			return
		}
		a := actual.Component(axis)
		if a == 0 {
			return
		}
		ratio := target.Component(axis) / a
		if ratio < factor {
			factor = ratio
		}
	}
	consider(geom.AxisX)
	consider(geom.AxisY)
	consider(geom.AxisZ)

	if math.IsInf(factor, 1) {
		return 1
	}
	return factor
}
