// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the mesh-builder boundary: sphere/cylinder/OBJ
// generators returning (vertices, arbitrary-arity faces), plus the
// triangulation, Y/Z swap, and octant-offset the engine applies to whatever
// a builder returns, grounded on the teacher's vgpu/vshape box generator.
package mesh

import "github.com/cogentcore-labs/scenelayout/geom"

// Builder is the mesh-builder contract: return vertices and faces of
// arbitrary arity (the engine triangulates fans and swaps Y/Z before use).
// Sphere, Cylinder, and Obj loading are reference implementations of this
// external collaborator contract — not a claim to match any particular
// renderer's shading/texturing fidelity.
type Builder interface {
	Build() (vertices []geom.Vector3, faces [][]int)
}

// Triangulate fans every face (of any arity >= 3) into triangles in
// circular order, swaps each vertex's Y and Z to match the engine's Y-up
// convention, and offsets every vertex by offset (e.g. (radius, 0, radius)
// so meshes sit in the positive octant).
func Triangulate(vertices []geom.Vector3, faces [][]int, offset geom.Vector3) ([]geom.Vector3, []geom.Triangle) {
	outVerts := make([]geom.Vector3, len(vertices))
	for i, v := range vertices {
		outVerts[i] = geom.Vec3(v.X, v.Z, v.Y).Add(offset)
	}
	var tris []geom.Triangle
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		for i := 1; i < len(face)-1; i++ {
			tris = append(tris, geom.Triangle{A: face[0], B: face[i], C: face[i+1]})
		}
	}
	return outVerts, tris
}

// Build runs a Builder through Triangulate with the standard
// (radius, 0, radius) positive-octant offset.
func Build(b Builder, radius float64) ([]geom.Vector3, []geom.Triangle) {
	verts, faces := b.Build()
	return Triangulate(verts, faces, geom.Vec3(radius, 0, radius))
}
