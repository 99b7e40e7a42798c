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

// Cylinder builds a capped cylinder: radius/detail from Circular, height
// from Size's height component.
type Cylinder struct {
	Circular *feature.Circular
	Size     *feature.Size
	Color    *feature.Color
	Optics   *feature.Optics
	HideShow *feature.HideShow
	Text     *feature.Text
}

func NewCylinder() *Cylinder {
	return &Cylinder{
		Circular: feature.NewCircular(),
		Size:     feature.NewSize(),
		Color:    feature.NewColor(),
		Optics:   feature.NewOptics(),
		HideShow: feature.NewHideShow(),
		Text:     feature.NewText(),
	}
}

func (c *Cylinder) Features() *feature.Set {
	return feature.NewSet(c.Circular, c.Size, c.Color, c.Optics, c.HideShow, c.Text)
}

func (c *Cylinder) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	radius, err := c.Circular.Radius.Eval(av, "radius")
	if err != nil {
		return err
	}
	detail, err := c.Circular.Detail.Eval(av, "detail")
	if err != nil {
		return err
	}
	_, height, _, err := c.Size.Resolve(av)
	if err != nil {
		return err
	}
	slices := feature.NumSlices(radius, detail)
	builder := mesh.NewCylinder(radius, height, slices)
	verts, tris := mesh.Build(builder, radius)

	g, err := drawableGeometry(verts, tris, c.Color, c.Optics, c.HideShow, c.Text, av)
	if err != nil {
		return err
	}
	rt.Update(p, g)
	return nil
}

func (c *Cylinder) Clone() Element { return cloneVia(c) }
