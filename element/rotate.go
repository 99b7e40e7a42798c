// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Rotate resolves its yaw/pitch/roll into a Rotation and applies it to
// every child subtree as one rigid body, rotated around their combined
// centre and translated back so the combined bottom-left is unchanged.
type Rotate struct {
	Rotate *feature.Rotate
}

func NewRotate() *Rotate {
	return &Rotate{Rotate: feature.NewRotate()}
}

func (r *Rotate) Features() *feature.Set {
	return feature.NewSet(r.Rotate)
}

func (r *Rotate) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	rot, err := r.Rotate.Resolve(av)
	if err != nil {
		return err
	}

	children := rt.ChildrenOf(p)
	if len(children) > 0 {
		rt.RotatePathsInPlace(children, rot)
	}

	rt.Update(p, nonDrawableGeometry(boundsUnionOfChildren(rt, p)))
	return nil
}

func (r *Rotate) Clone() Element { return cloneVia(r) }
