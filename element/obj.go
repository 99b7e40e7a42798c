// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/mesh"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Obj renders a pre-loaded OBJ mesh (mesh.LoadObj is the external
// collaborator; file I/O is out of scope here, so Source is supplied
// directly rather than parsed from an attribute), scaled to fit its Size
// feature's constraints via the same compute_scale_factor Scale uses.
type Obj struct {
	Source   *mesh.Obj
	Size     *feature.Size
	Axis     *feature.AxisFeature
	Color    *feature.Color
	Optics   *feature.Optics
	HideShow *feature.HideShow
	Text     *feature.Text
}

func NewObj(src *mesh.Obj) *Obj {
	return &Obj{
		Source:   src,
		Size:     feature.NewSize(),
		Axis:     feature.NewAxisFeature(),
		Color:    feature.NewColor(),
		Optics:   feature.NewOptics(),
		HideShow: feature.NewHideShow(),
		Text:     feature.NewText(),
	}
}

func (o *Obj) Features() *feature.Set {
	return feature.NewSet(o.Size, o.Axis, o.Color, o.Optics, o.HideShow, o.Text)
}

func (o *Obj) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	if o.Source == nil {
		g, err := drawableGeometry(nil, nil, o.Color, o.Optics, o.HideShow, o.Text, av)
		if err != nil {
			return err
		}
		rt.Update(p, g)
		return nil
	}

	verts, tris := mesh.BuildObj(o.Source)
	rawBounds := geom.BoundsFromPoints(verts)

	target, err := o.Size.ResolveVector(av)
	if err != nil {
		return err
	}

	var axisOverride *geom.Axis
	if !o.Axis.Axis.Defaulted() {
		a := o.Axis.Axis.Value
		axisOverride = &a
	}
	factor := computeScaleFactor(target, rawBounds.Size(), o.Size, axisOverride)
	scaled := make([]geom.Vector3, len(verts))
	for i, v := range verts {
		scaled[i] = v.MulScalar(factor)
	}

	g, err := drawableGeometry(scaled, tris, o.Color, o.Optics, o.HideShow, o.Text, av)
	if err != nil {
		return err
	}
	rt.Update(p, g)
	return nil
}

// Clone copies every attribute feature but shares Source: the OBJ mesh
// data is an immutable asset (and carries unexported fields copier cannot
// reach), not per-instance state, so cloning an Obj element re-points at
// the same mesh.Obj rather than attempting to deep-copy it.
func (o *Obj) Clone() Element {
	return &Obj{
		Source:   o.Source,
		Size:     cloneVia(o.Size),
		Axis:     cloneVia(o.Axis),
		Color:    cloneVia(o.Color),
		Optics:   cloneVia(o.Optics),
		HideShow: cloneVia(o.HideShow),
		Text:     cloneVia(o.Text),
	}
}
