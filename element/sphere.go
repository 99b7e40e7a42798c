// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/mesh"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Sphere builds a UV-sphere mesh from its Circular feature (radius/detail
// control slice count via feature.NumSlices), through the mesh-builder
// boundary (fan-triangulation, Y/Z swap, octant offset).
type Sphere struct {
	Circular *feature.Circular
	Color    *feature.Color
	Optics   *feature.Optics
	HideShow *feature.HideShow
	Text     *feature.Text
}

func NewSphere() *Sphere {
	return &Sphere{
		Circular: feature.NewCircular(),
		Color:    feature.NewColor(),
		Optics:   feature.NewOptics(),
		HideShow: feature.NewHideShow(),
		Text:     feature.NewText(),
	}
}

func (s *Sphere) Features() *feature.Set {
	return feature.NewSet(s.Circular, s.Color, s.Optics, s.HideShow, s.Text)
}

func (s *Sphere) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	radius, err := s.Circular.Radius.Eval(av, "radius")
	if err != nil {
		return err
	}
	detail, err := s.Circular.Detail.Eval(av, "detail")
	if err != nil {
		return err
	}
	slices := feature.NumSlices(radius, detail)
	builder := mesh.NewSphere(radius, slices)
	verts, tris := mesh.Build(builder, radius)

	g, err := drawableGeometry(verts, tris, s.Color, s.Optics, s.HideShow, s.Text, av)
	if err != nil {
		return err
	}
	rt.Update(p, g)
	return nil
}

func (s *Sphere) Clone() Element { return cloneVia(s) }
