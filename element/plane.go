// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"math"

	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/mesh"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Plane is a Box whose width/depth grow to fit its children: width/depth
// are max(own, max descendant width/depth) + 2*padding, and every
// descendant is offset by (padding, height, padding) so it sits on top,
// inside the pad.
type Plane struct {
	Size     *feature.Size
	Color    *feature.Color
	Optics   *feature.Optics
	HideShow *feature.HideShow
	Text     *feature.Text
	Padding  *feature.Padding
}

func NewPlane() *Plane {
	return &Plane{
		Size:     feature.NewSize(),
		Color:    feature.NewColor(),
		Optics:   feature.NewOptics(),
		HideShow: feature.NewHideShow(),
		Text:     feature.NewText(),
		Padding:  feature.NewPadding(),
	}
}

func (pl *Plane) Features() *feature.Set {
	return feature.NewSet(pl.Size, pl.Color, pl.Optics, pl.HideShow, pl.Text, pl.Padding)
}

func (pl *Plane) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	ownW, ownH, ownD, err := pl.Size.Resolve(av)
	if err != nil {
		return err
	}
	pad, err := pl.Padding.Padding.Eval(av, "padding")
	if err != nil {
		return err
	}

	maxW, maxD := 0.0, 0.0
	for _, c := range rt.ChildrenOf(p) {
		cg, ok := rt.Get(c)
		if !ok {
			continue
		}
		size := cg.Bounds.Size()
		maxW = math.Max(maxW, size.X)
		maxD = math.Max(maxD, size.Z)
	}

	width := math.Max(ownW, maxW) + 2*pad
	depth := math.Max(ownD, maxD) + 2*pad

	verts, tris := mesh.Box(width, ownH, depth)
	g, err := drawableGeometry(verts, tris, pl.Color, pl.Optics, pl.HideShow, pl.Text, av)
	if err != nil {
		return err
	}
	rt.Update(p, g)

	rt.MoveDescendantsBy(p, geom.Vec3(pad, ownH, pad))
	return nil
}

func (pl *Plane) Clone() Element { return cloneVia(pl) }
