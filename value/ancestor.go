// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the typed attribute cells (C5) and the
// per-traversal AncestorValues map (C6) that relative values resolve
// against, plus the topological sort used to order cross-referencing
// attributes within one feature.
package value

import (
	"fmt"

	"github.com/cogentcore-labs/scenelayout/errs"
	"github.com/cogentcore-labs/scenelayout/geom"
)

// Kind tags the concrete type held by an AncestorValues entry.
type Kind int

const (
	KindFloat Kind = iota
	KindBool
	KindInt
	KindString
	KindColor
	KindRotation
	KindAxis
	KindAlignment
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindRotation:
		return "rotation"
	case KindAxis:
		return "axis"
	case KindAlignment:
		return "alignment"
	default:
		return "unknown"
	}
}

// Entry is a tagged union over the concrete value types an ancestor can
// export.
type Entry struct {
	Kind      Kind
	Float     float64
	Bool      bool
	Int       int
	String    string
	Color     geom.Color
	Rotation  geom.Rotation
	Axis      geom.Axis
	Alignment geom.Alignment
}

// AncestorValues is the per-traversal map of named values exported by
// ancestors, seeded top-down during render.
type AncestorValues struct {
	entries map[string]Entry
}

// NewAncestorValues constructs an empty AncestorValues.
func NewAncestorValues() *AncestorValues {
	return &AncestorValues{entries: make(map[string]Entry)}
}

// Set registers an entry under name, overwriting any existing binding.
func (a *AncestorValues) Set(name string, e Entry) {
	a.entries[name] = e
}

// SetFloat is a convenience wrapper for the common case.
func (a *AncestorValues) SetFloat(name string, v float64) {
	a.Set(name, Entry{Kind: KindFloat, Float: v})
}

// SeedSiblingCounts synthesises the "children" and "equal" values from the
// sibling count at this level: children = count, equal = 100/children (or 0
// if there are no siblings).
func (a *AncestorValues) SeedSiblingCounts(count int) {
	a.Set("children", Entry{Kind: KindInt, Int: count})
	equal := 0.0
	if count > 0 {
		equal = 100.0 / float64(count)
	}
	a.SetFloat("equal", equal)
}

// Clone returns a shallow copy suitable for passing down one more level
// (callers add to the clone, not the original, so siblings don't leak
// values to each other).
func (a *AncestorValues) Clone() *AncestorValues {
	cp := make(map[string]Entry, len(a.entries))
	for k, v := range a.entries {
		cp[k] = v
	}
	return &AncestorValues{entries: cp}
}

func (a *AncestorValues) get(name string) (Entry, bool) {
	e, ok := a.entries[name]
	return e, ok
}

// GetFloat returns the float binding for name, or ErrMissingAncestor /
// ErrTypeMismatch.
func (a *AncestorValues) GetFloat(name string) (float64, error) {
	e, ok := a.get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrMissingAncestor, name)
	}
	if e.Kind != KindFloat {
		return 0, fmt.Errorf("%w: %q is %s, not float", errs.ErrTypeMismatch, name, e.Kind)
	}
	return e.Float, nil
}

// GetBool returns the bool binding for name.
func (a *AncestorValues) GetBool(name string) (bool, error) {
	e, ok := a.get(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", errs.ErrMissingAncestor, name)
	}
	if e.Kind != KindBool {
		return false, fmt.Errorf("%w: %q is %s, not bool", errs.ErrTypeMismatch, name, e.Kind)
	}
	return e.Bool, nil
}

// GetColor returns the colour binding for name.
func (a *AncestorValues) GetColor(name string) (geom.Color, error) {
	e, ok := a.get(name)
	if !ok {
		return geom.Color{}, fmt.Errorf("%w: %q", errs.ErrMissingAncestor, name)
	}
	if e.Kind != KindColor {
		return geom.Color{}, fmt.Errorf("%w: %q is %s, not color", errs.ErrTypeMismatch, name, e.Kind)
	}
	return e.Color, nil
}

// Has reports whether name is bound at all.
func (a *AncestorValues) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}
