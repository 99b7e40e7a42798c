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

// HideShow clamps every descendant's hide/show distance up to its own
// resolved hide/show distance, when the corresponding clamp flag is set.
type HideShow struct {
	HideShow *feature.HideShow
}

func NewHideShow() *HideShow {
	return &HideShow{HideShow: feature.NewHideShow()}
}

func (h *HideShow) Features() *feature.Set {
	return feature.NewSet(h.HideShow)
}

func (h *HideShow) Render(p path.Path, rt *rendertree.RenderTree, av *value.AncestorValues) error {
	hd, err := h.HideShow.HideDistance.Eval(av, "hide_distance")
	if err != nil {
		return err
	}
	sd, err := h.HideShow.ShowDistance.Eval(av, "show_distance")
	if err != nil {
		return err
	}

	clampHide := h.HideShow.ClampDescendantHideDistances.Value
	clampShow := h.HideShow.ClampDescendantShowDistances.Value
	if clampHide || clampShow {
		for _, d := range rt.DescendantsOf(p, false) {
			g, ok := rt.Get(d)
			if !ok {
				continue
			}
			changed := false
			if clampHide && g.HideDistance < hd {
				g.HideDistance = hd
				changed = true
			}
			if clampShow && g.ShowDistance < sd {
				g.ShowDistance = sd
				changed = true
			}
			if changed {
				rt.Update(d, g)
			}
		}
	}

	g := nonDrawableGeometry(boundsUnionOfChildren(rt, p))
	g.HideDistance = hd
	g.ShowDistance = sd
	rt.Update(p, g)
	return nil
}

func (h *HideShow) Clone() Element { return cloneVia(h) }
