// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/mesh"
)

func TestBoxVerticesAndTriangleCount(t *testing.T) {
	verts, tris := mesh.Box(2, 3, 4)
	want := []geom.Vector3{
		geom.Vec3(0, 0, 0), geom.Vec3(0, 3, 0),
		geom.Vec3(2, 0, 0), geom.Vec3(2, 3, 0),
		geom.Vec3(0, 0, 4), geom.Vec3(0, 3, 4),
		geom.Vec3(2, 0, 4), geom.Vec3(2, 3, 4),
	}
	require.Len(t, verts, 8)
	for i, v := range want {
		assert.True(t, v.Equal(verts[i]), "vertex %d: want %v got %v", i, v, verts[i])
	}
	assert.Len(t, tris, 12)
}

func TestBoxTrianglesMatchLiteralWindingTable(t *testing.T) {
	_, tris := mesh.Box(1, 1, 1)
	want := []geom.Triangle{
		{A: 1, B: 2, C: 0},
		{A: 1, B: 3, C: 2},
		{A: 0, B: 4, C: 1},
		{A: 4, B: 5, C: 1},
		{A: 4, B: 6, C: 5},
		{A: 6, B: 7, C: 5},
		{A: 3, B: 6, C: 2},
		{A: 3, B: 7, C: 6},
		{A: 2, B: 4, C: 0},
		{A: 2, B: 6, C: 4},
		{A: 1, B: 5, C: 3},
		{A: 5, B: 7, C: 3},
	}
	assert.Equal(t, want, tris)
}

func TestTriangulateFansQuadAndSwapsYZ(t *testing.T) {
	verts := []geom.Vector3{
		geom.Vec3(0, 0, 0), geom.Vec3(1, 0, 0), geom.Vec3(1, 1, 0), geom.Vec3(0, 1, 0),
	}
	faces := [][]int{{0, 1, 2, 3}}
	outVerts, tris := mesh.Triangulate(verts, faces, geom.Vec3(0, 0, 0))
	require.Len(t, tris, 2)
	assert.Equal(t, geom.Vec3(0, 0, 0), outVerts[0])
	assert.Equal(t, geom.Vec3(1, 0, 0), outVerts[1])
	assert.Equal(t, geom.Vec3(1, 0, 1), outVerts[2])
}

func TestTriangulateAppliesOffset(t *testing.T) {
	verts := []geom.Vector3{geom.Vec3(0, 0, 0)}
	outVerts, _ := mesh.Triangulate(verts, nil, geom.Vec3(5, 0, 5))
	assert.Equal(t, geom.Vec3(5, 0, 5), outVerts[0])
}

func TestSphereProducesTrianglesAfterBuild(t *testing.T) {
	s := mesh.NewSphere(1, 8)
	verts, tris := mesh.Build(s, 1)
	assert.NotEmpty(t, verts)
	assert.NotEmpty(t, tris)
}

func TestCylinderProducesTrianglesAfterBuild(t *testing.T) {
	c := mesh.NewCylinder(1, 2, 6)
	verts, tris := mesh.Build(c, 1)
	assert.NotEmpty(t, verts)
	assert.NotEmpty(t, tris)
}

func TestLoadObjParsesVerticesAndFaces(t *testing.T) {
	src := `
# a triangle and a quad sharing vertices
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 2 3 4
`
	o, err := mesh.LoadObj(strings.NewReader(src))
	require.NoError(t, err)
	verts, faces := o.Build()
	require.Len(t, verts, 4)
	require.Len(t, faces, 2)
	assert.Equal(t, []int{0, 1, 2}, faces[0])
	assert.Equal(t, []int{0, 1, 2, 3}, faces[1])
}

func TestLoadObjHandlesVertexTextureNormalIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1/1/1 2/2/1 3/3/1\n"
	o, err := mesh.LoadObj(strings.NewReader(src))
	require.NoError(t, err)
	_, faces := o.Build()
	assert.Equal(t, []int{0, 1, 2}, faces[0])
}

func TestLoadObjRejectsMalformedVertexLine(t *testing.T) {
	_, err := mesh.LoadObj(strings.NewReader("v 0 0\n"))
	assert.Error(t, err)
}
