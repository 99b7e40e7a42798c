// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cogentcore-labs/scenelayout/geom"

// BoxVertices returns the 8 corners of the axis-aligned box
// {(0,0,0)-(w,h,d)} in the fixed order the Box element contract requires:
// v0=(0,0,0), v1=(0,h,0), v2=(w,0,0), v3=(w,h,0),
// v4=(0,0,d), v5=(0,h,d), v6=(w,0,d), v7=(w,h,d).
func BoxVertices(w, h, d float64) []geom.Vector3 {
	return []geom.Vector3{
		geom.Vec3(0, 0, 0),
		geom.Vec3(0, h, 0),
		geom.Vec3(w, 0, 0),
		geom.Vec3(w, h, 0),
		geom.Vec3(0, 0, d),
		geom.Vec3(0, h, d),
		geom.Vec3(w, 0, d),
		geom.Vec3(w, h, d),
	}
}

// boxTriangles is the fixed 12-triangle winding for the 8 vertices
// BoxVertices returns. The order is part of the contract and is copied
// verbatim from the original engine's literal index table; it is not a
// clean per-face CCW enumeration and isn't meant to read as one.
var boxTriangles = []geom.Triangle{
	{A: 1, B: 2, C: 0}, // z = 0 face
	{A: 1, B: 3, C: 2},
	{A: 0, B: 4, C: 1}, // left side (x = 0)
	{A: 4, B: 5, C: 1},
	{A: 4, B: 6, C: 5}, // z = d face
	{A: 6, B: 7, C: 5},
	{A: 3, B: 6, C: 2}, // right side (x = w)
	{A: 3, B: 7, C: 6},
	{A: 2, B: 4, C: 0}, // bottom (y = 0)
	{A: 2, B: 6, C: 4},
	{A: 1, B: 5, C: 3}, // top (y = h)
	{A: 5, B: 7, C: 3},
}

// BoxTriangles returns a copy of the fixed 12-triangle winding table.
func BoxTriangles() []geom.Triangle {
	out := make([]geom.Triangle, len(boxTriangles))
	copy(out, boxTriangles)
	return out
}

// Box builds the Box element's geometry data directly (it is in scope, not
// a mesh-builder plugin): 8 vertices and 12 triangles for the AABB
// {(0,0,0)-(w,h,d)}.
func Box(w, h, d float64) ([]geom.Vector3, []geom.Triangle) {
	return BoxVertices(w, h, d), BoxTriangles()
}
