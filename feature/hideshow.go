// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"math"

	"github.com/cogentcore-labs/scenelayout/value"
)

// HideShow holds hide/show distance thresholds and the descendant-clamping
// flags.
type HideShow struct {
	HideDistance                 *value.RelativeFloat
	ShowDistance                 *value.RelativeFloat
	ClampDescendantHideDistances *value.BoolValue
	ClampDescendantShowDistances *value.BoolValue
}

func NewHideShow() *HideShow {
	show := value.NewRelativeFloat("show_distance", "", math.Inf(1))
	return &HideShow{
		HideDistance:                 value.NewRelativeFloat("hide_distance", "", 0),
		ShowDistance:                 show,
		ClampDescendantHideDistances: value.NewBoolValue("clamp_descendant_hide_distances", "", false),
		ClampDescendantShowDistances: value.NewBoolValue("clamp_descendant_show_distances", "", false),
	}
}

func (f *HideShow) Attributes() []value.Cell {
	return []value.Cell{f.HideDistance, f.ShowDistance, f.ClampDescendantHideDistances, f.ClampDescendantShowDistances}
}

func (f *HideShow) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *HideShow) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}
