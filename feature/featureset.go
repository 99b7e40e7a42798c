// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "github.com/cogentcore-labs/scenelayout/value"

// Feature is the common interface every feature mixin satisfies.
type Feature interface {
	Attributes() []value.Cell
	UpdateFromAttributes(attrs map[string]string) error
	ComputeAndUpdateAncestorValues(av *value.AncestorValues)
}

// Set composes multiple Features into one element's attribute bundle. It
// forwards UpdateFromAttributes, Attributes (set-union), and
// ComputeAndUpdateAncestorValues to each feature in turn. Feature order can
// matter for ancestor-value propagation (a later feature may want to see an
// earlier one's exports), so elements declare their features in a fixed,
// documented order; within one feature the cross-reference ordering (e.g.
// Size's width/height/depth) is handled internally by that feature.
type Set struct {
	features []Feature
}

// NewSet composes the given features, in propagation order.
func NewSet(features ...Feature) *Set {
	return &Set{features: features}
}

// UpdateFromAttributes forwards to every feature. Unknown attribute names
// are ignored (not an error) so that multiple elements can share one
// attribute bag without every element recognizing every key.
func (s *Set) UpdateFromAttributes(attrs map[string]string) error {
	for _, f := range s.features {
		if err := f.UpdateFromAttributes(attrs); err != nil {
			return err
		}
	}
	return nil
}

// Attributes returns the set-union of every feature's cells.
func (s *Set) Attributes() []value.Cell {
	var out []value.Cell
	for _, f := range s.features {
		out = append(out, f.Attributes()...)
	}
	return out
}

// ComputeAndUpdateAncestorValues forwards to every feature in order.
func (s *Set) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, f := range s.features {
		f.ComputeAndUpdateAncestorValues(av)
	}
}
