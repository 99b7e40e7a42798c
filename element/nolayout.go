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

// NoLayout renders nothing at all — it never writes to the RenderTree, so
// it is invisible to ancestors querying children_of/descendants_of. It may
// still carry a Size feature for direct (non-RenderTree) introspection by
// code that holds the Node itself.
type NoLayout struct {
	Size *feature.Size
}

func NewNoLayout() *NoLayout {
	return &NoLayout{Size: feature.NewSize()}
}

func (n *NoLayout) Features() *feature.Set {
	return feature.NewSet(n.Size)
}

func (n *NoLayout) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	return nil
}

func (n *NoLayout) Clone() Element { return cloneVia(n) }
