// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the primitive semantic value types (Axis, Alignment,
// UnitInterval), the vector/bounds/rotation math, and the mesh Geometry
// record that the rest of the scene-layout engine builds on.
package geom

import "math"

// Vector3 is a 3D point or displacement, Y-up with Z as the second planar
// axis (the engine's Y-up convention, per the mesh-builder boundary).
type Vector3 struct {
	X, Y, Z float64
}

// Vec3 constructs a Vector3.
func Vec3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

// Epsilon is the absolute tolerance Vector3.Equal and Rotation.Equal
// compare within. It is a package-level variable, not a constant, so the
// engine's config layer can tighten or loosen it at startup for a given
// deployment's unit scale.
var Epsilon = 1e-9

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Component returns the value along the given axis.
func (v Vector3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return 0
}

// WithComponent returns a copy of v with the given axis set to val.
func (v Vector3) WithComponent(a Axis, val float64) Vector3 {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	case AxisZ:
		v.Z = val
	}
	return v
}

func (v Vector3) Equal(o Vector3) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon && math.Abs(v.Z-o.Z) < Epsilon
}

// Min/Max component-wise.
func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{minf(v.X, o.X), minf(v.Y, o.Y), minf(v.Z, o.Z)}
}
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{maxf(v.X, o.X), maxf(v.Y, o.Y), maxf(v.Z, o.Z)}
}
