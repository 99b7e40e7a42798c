// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature implements the named attribute bundles (C7) that element
// kinds compose: Size, Color, Optics, HideShow, Text, Rotate, Padding,
// Spacing, Axis, Align, Circular.
package feature

import (
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/value"
)

var sizeAliases = map[string]string{"w": "width", "h": "height", "d": "depth"}

// Size holds the width/height/depth relative-float cells. Because any of
// the three may reference the other two, Resolve topologically sorts them
// before evaluating.
type Size struct {
	Width  *value.RelativeFloat
	Height *value.RelativeFloat
	Depth  *value.RelativeFloat
}

// NewSize constructs a Size with defaults of 1,1,1.
func NewSize() *Size {
	return &Size{
		Width:  value.NewRelativeFloat("width", "w", 1),
		Height: value.NewRelativeFloat("height", "h", 1),
		Depth:  value.NewRelativeFloat("depth", "d", 1),
	}
}

func (s *Size) cells() map[string]*value.RelativeFloat {
	return map[string]*value.RelativeFloat{"width": s.Width, "height": s.Height, "depth": s.Depth}
}

// Attributes returns the cells in width, height, depth order for
// FeatureSet forwarding.
func (s *Size) Attributes() []value.Cell {
	return []value.Cell{s.Width, s.Height, s.Depth}
}

func (s *Size) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(s.Attributes(), attrs)
}

func (s *Size) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range s.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// Resolve evaluates width/height/depth against av, ordering the three by
// their cross-references and detecting cycles between them.
func (s *Size) Resolve(av *value.AncestorValues) (w, h, d float64, err error) {
	cells := s.cells()
	names := []string{"width", "height", "depth"}
	deps := make(map[string]string)
	for name, cell := range cells {
		if cell.IsRelative() {
			deps[name] = cell.RelativeName
		}
	}
	order, err := value.TopoSort(names, deps, sizeAliases)
	if err != nil {
		return 0, 0, 0, err
	}
	local := av.Clone()
	results := make(map[string]float64, 3)
	for _, name := range order {
		v, verr := cells[name].Eval(local, name)
		if verr != nil {
			return 0, 0, 0, verr
		}
		results[name] = v
		local.SetFloat(name, v)
	}
	return results["width"], results["height"], results["depth"], nil
}

// ResolveVector is Resolve packaged as a geom.Vector3.
func (s *Size) ResolveVector(av *value.AncestorValues) (geom.Vector3, error) {
	w, h, d, err := s.Resolve(av)
	return geom.Vec3(w, h, d), err
}

// Unconstrained reports whether the given axis's size cell is still
// defaulted (never explicitly set) — used by Scale to find the axes it is
// free to fit.
func (s *Size) Unconstrained(a geom.Axis) bool {
	switch a {
	case geom.AxisX:
		return s.Width.Defaulted()
	case geom.AxisY:
		return s.Height.Defaulted()
	case geom.AxisZ:
		return s.Depth.Defaulted()
	}
	return false
}

func updateCells(cells []value.Cell, attrs map[string]string) error {
	for name, raw := range attrs {
		for _, c := range cells {
			if c.MatchesAttributeName(name) {
				if err := c.SetFromString(raw); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
