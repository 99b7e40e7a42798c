// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"github.com/cogentcore-labs/scenelayout/colorx"
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Color holds the colour and darkness cells.
type Color struct {
	Color    *value.ColorValue
	Darkness *value.UnitIntervalValue
}

func NewColor() *Color {
	return &Color{
		Color:    value.NewColorValue("color", "c", geom.ColorBlack),
		Darkness: value.NewUnitIntervalValue("darkness", "", 0),
	}
}

func (f *Color) Attributes() []value.Cell {
	return []value.Cell{f.Color, f.Darkness}
}

func (f *Color) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Color) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// ComputeColor implements ColorFeature.compute_color(opacity): applies
// opacity then darkens by the darkness cell.
func (f *Color) ComputeColor(opacity float64) geom.Color {
	return colorx.Compute(f.Color.Value, opacity, float64(f.Darkness.Value))
}

// Optics holds the opacity cell.
type Optics struct {
	Opacity *value.UnitIntervalValue
}

func NewOptics() *Optics {
	return &Optics{Opacity: value.NewUnitIntervalValue("opacity", "o", 1)}
}

func (f *Optics) Attributes() []value.Cell { return []value.Cell{f.Opacity} }

func (f *Optics) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Optics) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}
