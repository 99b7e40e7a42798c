// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"math"

	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Padding holds the padding cell.
type Padding struct {
	Padding *value.RelativeFloat
}

func NewPadding() *Padding {
	return &Padding{Padding: value.NewRelativeFloat("padding", "p", 0)}
}

func (f *Padding) Attributes() []value.Cell { return []value.Cell{f.Padding} }

func (f *Padding) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Padding) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// DefaultSpacingValue seeds every newly constructed Spacing feature's
// default value. It starts at the spec's fixed default of 0; config.Apply
// may raise it for a deployment that wants every new Grid/Juxtapose/Street
// to start from a non-zero gap without touching each element's attributes
// individually. Changing it never affects Spacing features already
// constructed, only ones built afterward.
var DefaultSpacingValue = 0.0

// Spacing holds the spacing cell.
type Spacing struct {
	Spacing *value.RelativeFloat
}

func NewSpacing() *Spacing {
	return &Spacing{Spacing: value.NewRelativeFloat("spacing", "s", DefaultSpacingValue)}
}

func (f *Spacing) Attributes() []value.Cell { return []value.Cell{f.Spacing} }

func (f *Spacing) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Spacing) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// AxisFeature holds the axis cell.
type AxisFeature struct {
	Axis *value.AxisValue
}

func NewAxisFeature() *AxisFeature {
	return &AxisFeature{Axis: value.NewAxisValue("axis", "", geom.AxisX)}
}

func (f *AxisFeature) Attributes() []value.Cell { return []value.Cell{f.Axis} }

func (f *AxisFeature) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *AxisFeature) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// Align holds the align cell.
type Align struct {
	Align *value.AlignmentValue
}

func NewAlign() *Align {
	return &Align{Align: value.NewAlignmentValue("align", "", geom.AlignCenter)}
}

func (f *Align) Attributes() []value.Cell { return []value.Cell{f.Align} }

func (f *Align) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Align) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// Circular holds radius/detail, and computes the slice-count helper used by
// Sphere/Cylinder mesh builders.
type Circular struct {
	Radius *value.RelativeFloat
	Detail *value.RelativeFloat
}

func NewCircular() *Circular {
	return &Circular{
		Radius: value.NewRelativeFloat("radius", "r", 1),
		Detail: value.NewRelativeFloat("detail", "", 0.5),
	}
}

func (f *Circular) Attributes() []value.Cell { return []value.Cell{f.Radius, f.Detail} }

func (f *Circular) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Circular) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// NumSlices computes floor(log10(sqrt(detail+1))*radius + 10).
func NumSlices(radius, detail float64) int {
	return int(math.Floor(math.Log10(math.Sqrt(detail+1))*radius + 10))
}
