// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cogentcore-labs/scenelayout/geom"
)

// Cylinder is a capped-cylinder Builder: two rings of slices vertices plus
// top/bottom center vertices, grounded on the teacher's vgpu/vshape
// cylinder generator.
type Cylinder struct {
	Radius float64
	Height float64
	Slices int
}

// NewCylinder returns a Cylinder builder with at least 3 slices.
func NewCylinder(radius, height float64, slices int) *Cylinder {
	if slices < 3 {
		slices = 3
	}
	return &Cylinder{Radius: radius, Height: height, Slices: slices}
}

func (c *Cylinder) Build() ([]geom.Vector3, [][]int) {
	var verts []geom.Vector3
	top := make([]int, c.Slices)
	bottom := make([]int, c.Slices)

	for i := 0; i < c.Slices; i++ {
		theta := 2 * math.Pi * float64(i) / float64(c.Slices)
		x := c.Radius * math.Cos(theta)
		z := c.Radius * math.Sin(theta)
		top[i] = len(verts)
		verts = append(verts, geom.Vec3(x, c.Height, z))
	}
	for i := 0; i < c.Slices; i++ {
		theta := 2 * math.Pi * float64(i) / float64(c.Slices)
		x := c.Radius * math.Cos(theta)
		z := c.Radius * math.Sin(theta)
		bottom[i] = len(verts)
		verts = append(verts, geom.Vec3(x, 0, z))
	}

	topCenter := len(verts)
	verts = append(verts, geom.Vec3(0, c.Height, 0))
	bottomCenter := len(verts)
	verts = append(verts, geom.Vec3(0, 0, 0))

	var faces [][]int
	for i := 0; i < c.Slices; i++ {
		next := (i + 1) % c.Slices
		faces = append(faces, []int{top[i], bottom[i], bottom[next], top[next]})
		faces = append(faces, []int{topCenter, top[i], top[next]})
		faces = append(faces, []int{bottomCenter, bottom[next], bottom[i]})
	}

	return verts, faces
}
