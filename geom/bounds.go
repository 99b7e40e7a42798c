// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bounds is adapted from the teacher's math32.Box3 AABB, with the engine's
// absorbing-empty union semantics layered on top (see Bounds.Union).
package geom

// Bounds is an axis-aligned bounding box defined by a base (min) and end
// (max) corner.
type Bounds struct {
	Base Vector3
	End  Vector3
}

// EmptyBounds is the zero-value bounds {(0,0,0)-(0,0,0)}, which Union
// treats as absorbing-empty (adopts the other operand).
var EmptyBounds = Bounds{}

// IsZeroEmpty reports whether b is the {(0,0,0)-(0,0,0)} absorbing-empty
// sentinel, as opposed to a degenerate but non-origin box.
func (b Bounds) IsZeroEmpty() bool {
	return b.Base == (Vector3{}) && b.End == (Vector3{})
}

// BoundsFromPoints computes the AABB of a set of points.
func BoundsFromPoints(points []Vector3) Bounds {
	if len(points) == 0 {
		return EmptyBounds
	}
	b := Bounds{Base: points[0], End: points[0]}
	for _, p := range points[1:] {
		b.Base = b.Base.Min(p)
		b.End = b.End.Max(p)
	}
	return b
}

// Union merges other into b. The zero-value empty bounds is absorbing:
// unioning with it adopts the other operand unchanged, rather than
// widening the box to include the origin.
func (b Bounds) Union(other Bounds) Bounds {
	if b.IsZeroEmpty() {
		return other
	}
	if other.IsZeroEmpty() {
		return b
	}
	return Bounds{Base: b.Base.Min(other.Base), End: b.End.Max(other.End)}
}

// Translate offsets both corners by v.
func (b Bounds) Translate(v Vector3) Bounds {
	return Bounds{Base: b.Base.Add(v), End: b.End.Add(v)}
}

// Scale scales both corners by v (component-wise), in place around the
// origin.
func (b Bounds) Scale(v Vector3) Bounds {
	return Bounds{Base: b.Base.Mul(v), End: b.End.Mul(v)}
}

// Size returns End - Base.
func (b Bounds) Size() Vector3 {
	return b.End.Sub(b.Base)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vector3 {
	return b.Base.Add(b.End).MulScalar(0.5)
}

// corners returns the eight corners of the box.
func (b Bounds) corners() [8]Vector3 {
	return [8]Vector3{
		{b.Base.X, b.Base.Y, b.Base.Z},
		{b.End.X, b.Base.Y, b.Base.Z},
		{b.Base.X, b.End.Y, b.Base.Z},
		{b.End.X, b.End.Y, b.Base.Z},
		{b.Base.X, b.Base.Y, b.End.Z},
		{b.End.X, b.Base.Y, b.End.Z},
		{b.Base.X, b.End.Y, b.End.Z},
		{b.End.X, b.End.Y, b.End.Z},
	}
}

// Rotate recomputes the AABB of the box's eight corners after rotation by
// r, as an AABB of an AABB (not a tight oriented box).
func (b Bounds) Rotate(r Rotation) Bounds {
	corners := b.corners()
	pts := make([]Vector3, len(corners))
	for i, c := range corners {
		pts[i] = r.Apply(c)
	}
	return BoundsFromPoints(pts)
}

// Equal reports approximate equality of both corners.
func (b Bounds) Equal(other Bounds) bool {
	return b.Base.Equal(other.Base) && b.End.Equal(other.End)
}
