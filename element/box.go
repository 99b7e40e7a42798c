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

// Box emits the 8-vertex, 12-triangle AABB {(0,0,0)-(w,h,d)} fixed mesh
// (mesh.Box) for its resolved Size.
type Box struct {
	Size     *feature.Size
	Color    *feature.Color
	Optics   *feature.Optics
	HideShow *feature.HideShow
	Text     *feature.Text
}

func NewBox() *Box {
	return &Box{
		Size:     feature.NewSize(),
		Color:    feature.NewColor(),
		Optics:   feature.NewOptics(),
		HideShow: feature.NewHideShow(),
		Text:     feature.NewText(),
	}
}

func (b *Box) Features() *feature.Set {
	return feature.NewSet(b.Size, b.Color, b.Optics, b.HideShow, b.Text)
}

func (b *Box) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	w, h, d, err := b.Size.Resolve(av)
	if err != nil {
		return err
	}
	verts, tris := mesh.Box(w, h, d)
	g, err := drawableGeometry(verts, tris, b.Color, b.Optics, b.HideShow, b.Text, av)
	if err != nil {
		return err
	}
	rt.Update(p, g)
	return nil
}

func (b *Box) Clone() Element { return cloneVia(b) }
