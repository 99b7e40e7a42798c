// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "sync/atomic"

// Triangle is a triplet of vertex indices into a Geometry's Vertices.
type Triangle struct {
	A, B, C int
}

var geometryIDCounter atomic.Uint64

// Geometry is the mesh record produced by an element's render: vertices,
// triangles, bounds, position, colour, and the hide/show/text decorations.
// Position is kept separate from Vertices so that moving a subtree is
// O(descendants) in position-only updates.
type Geometry struct {
	// ID is a monotonic debugging/logging correlation id; never used for
	// equality or diffing.
	ID uint64

	Vertices  []Vector3
	Triangles []Triangle
	Bounds    Bounds
	Pos       Vector3
	Color     Color
	Text      string

	HideDistance float64
	ShowDistance float64
}

// NewGeometry constructs a Geometry, computing Bounds as the AABB of
// vertices at construction time.
func NewGeometry(vertices []Vector3, triangles []Triangle) Geometry {
	g := Geometry{
		ID:        geometryIDCounter.Add(1),
		Vertices:  vertices,
		Triangles: triangles,
		Bounds:    BoundsFromPoints(vertices),
		Color:     ColorBlack,
	}
	return g
}

// Drawable reports whether this geometry has any vertices; non-drawable
// geometries are pure layout carriers (e.g. Juxtapose's aggregate bounds
// record).
func (g Geometry) Drawable() bool {
	return len(g.Vertices) > 0
}

// PositionedBounds returns Bounds translated by Pos.
func (g Geometry) PositionedBounds() Bounds {
	return g.Bounds.Translate(g.Pos)
}

// Translate returns a copy of g with Pos offset by v. Vertices are left
// untouched since position is tracked separately.
func (g Geometry) Translate(v Vector3) Geometry {
	g.Pos = g.Pos.Add(v)
	return g
}

// ScaleInPlace scales vertices and bounds by v, around the origin of the
// geometry's own local space (Pos is unaffected: scaling is a shape change,
// not a reposition).
func (g Geometry) ScaleInPlace(v Vector3) Geometry {
	verts := make([]Vector3, len(g.Vertices))
	for i, p := range g.Vertices {
		verts[i] = p.Mul(v)
	}
	g.Vertices = verts
	g.Bounds = g.Bounds.Scale(v)
	return g
}

// RotateInPlace rotates vertices and bounds by r, around the origin of the
// geometry's own local space.
func (g Geometry) RotateInPlace(r Rotation) Geometry {
	verts := make([]Vector3, len(g.Vertices))
	for i, p := range g.Vertices {
		verts[i] = r.Apply(p)
	}
	g.Vertices = verts
	g.Bounds = g.Bounds.Rotate(r)
	return g
}
