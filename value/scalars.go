// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strconv"

	"github.com/cogentcore-labs/scenelayout/colorx"
	"github.com/cogentcore-labs/scenelayout/errs"
	"github.com/cogentcore-labs/scenelayout/geom"
)

// BoolValue is a typed bool attribute cell.
type BoolValue struct {
	Base
	Value bool
}

func NewBoolValue(name, abbr string, def bool) *BoolValue {
	return &BoolValue{Base: NewBase(name, abbr), Value: def}
}

func (v *BoolValue) Set(val bool) {
	v.Value = val
	v.MarkSet()
}

func (v *BoolValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindBool, Bool: v.Value})
	}
}

func (v *BoolValue) SetFromString(s string) error {
	switch s {
	case "true", "1", "yes":
		v.Set(true)
	case "false", "0", "no":
		v.Set(false)
	default:
		return fmt.Errorf("%w: %q is not a bool", errs.ErrInvalidAttributeValue, s)
	}
	return nil
}

// IntValue is a typed int attribute cell.
type IntValue struct {
	Base
	Value int
}

func NewIntValue(name, abbr string, def int) *IntValue {
	return &IntValue{Base: NewBase(name, abbr), Value: def}
}

func (v *IntValue) Set(val int) {
	v.Value = val
	v.MarkSet()
}

func (v *IntValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindInt, Int: v.Value})
	}
}

func (v *IntValue) SetFromString(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an int", errs.ErrInvalidAttributeValue, s)
	}
	v.Set(n)
	return nil
}

// StringValue is a typed string attribute cell.
type StringValue struct {
	Base
	Value string
}

func NewStringValue(name, abbr string, def string) *StringValue {
	return &StringValue{Base: NewBase(name, abbr), Value: def}
}

func (v *StringValue) Set(val string) {
	v.Value = val
	v.MarkSet()
}

func (v *StringValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindString, String: v.Value})
	}
}

func (v *StringValue) SetFromString(s string) error {
	v.Set(s)
	return nil
}

// ColorValue is a typed colour attribute cell.
type ColorValue struct {
	Base
	Value geom.Color
}

func NewColorValue(name, abbr string, def geom.Color) *ColorValue {
	return &ColorValue{Base: NewBase(name, abbr), Value: def}
}

func (v *ColorValue) Set(val geom.Color) {
	v.Value = val
	v.MarkSet()
}

func (v *ColorValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindColor, Color: v.Value})
	}
}

func (v *ColorValue) SetFromString(s string) error {
	c, err := colorx.Parse(s)
	if err != nil {
		return err
	}
	v.Set(c)
	return nil
}

// RotationValue is a typed rotation attribute cell.
type RotationValue struct {
	Base
	Value geom.Rotation
}

func NewRotationValue(name, abbr string, def geom.Rotation) *RotationValue {
	return &RotationValue{Base: NewBase(name, abbr), Value: def}
}

func (v *RotationValue) Set(val geom.Rotation) {
	v.Value = val
	v.MarkSet()
}

func (v *RotationValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindRotation, Rotation: v.Value})
	}
}

// AxisValue is a typed axis attribute cell.
type AxisValue struct {
	Base
	Value geom.Axis
}

func NewAxisValue(name, abbr string, def geom.Axis) *AxisValue {
	return &AxisValue{Base: NewBase(name, abbr), Value: def}
}

func (v *AxisValue) Set(val geom.Axis) {
	v.Value = val
	v.MarkSet()
}

func (v *AxisValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindAxis, Axis: v.Value})
	}
}

func (v *AxisValue) SetFromString(s string) error {
	a, ok := geom.ParseAxis(s)
	if !ok {
		return fmt.Errorf("%w: %q is not an axis", errs.ErrInvalidAttributeValue, s)
	}
	v.Set(a)
	return nil
}

// AlignmentValue is a typed alignment attribute cell.
type AlignmentValue struct {
	Base
	Value geom.Alignment
}

func NewAlignmentValue(name, abbr string, def geom.Alignment) *AlignmentValue {
	return &AlignmentValue{Base: NewBase(name, abbr), Value: def}
}

func (v *AlignmentValue) Set(val geom.Alignment) {
	v.Value = val
	v.MarkSet()
}

func (v *AlignmentValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.Set(v.Name, Entry{Kind: KindAlignment, Alignment: v.Value})
	}
}

func (v *AlignmentValue) SetFromString(s string) error {
	a, ok := geom.ParseAlignment(s)
	if !ok {
		return fmt.Errorf("%w: %q is not an alignment", errs.ErrInvalidAttributeValue, s)
	}
	v.Set(a)
	return nil
}

// UnitIntervalValue is a typed UnitInterval attribute cell, clamped on
// every set.
type UnitIntervalValue struct {
	Base
	Value geom.UnitInterval
}

func NewUnitIntervalValue(name, abbr string, def geom.UnitInterval) *UnitIntervalValue {
	return &UnitIntervalValue{Base: NewBase(name, abbr), Value: def.Clamp()}
}

func (v *UnitIntervalValue) Set(val geom.UnitInterval) {
	v.Value = val.Clamp()
	v.MarkSet()
}

func (v *UnitIntervalValue) UpdateAncestorValues(av *AncestorValues) {
	if !v.Defaulted() {
		av.SetFloat(v.Name, float64(v.Value))
	}
}

func (v *UnitIntervalValue) SetFromString(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a float", errs.ErrInvalidAttributeValue, s)
	}
	v.Set(geom.UnitInterval(f))
	return nil
}
