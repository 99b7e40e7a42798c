// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cogentcore-labs/scenelayout/geom"
)

// Obj is a Builder backed by a minimal Wavefront OBJ reader: "v x y z"
// vertex lines and "f i j k ..." face lines of arbitrary arity. Face
// indices may carry "/vt/vn" suffixes (ignored) and may be negative
// (relative to the current vertex count, per the OBJ spec). Anything else
// (normals, texture coords, groups, materials) is ignored.
type Obj struct {
	vertices []geom.Vector3
	faces    [][]int
}

// LoadObj parses r as Wavefront OBJ text.
func LoadObj(r io.Reader) (*Obj, error) {
	o := &Obj{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: obj line %d: want 3 coordinates, got %d", lineNo, len(fields)-1)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: obj line %d: %w", lineNo, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: obj line %d: %w", lineNo, err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: obj line %d: %w", lineNo, err)
			}
			o.vertices = append(o.vertices, geom.Vec3(x, y, z))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: obj line %d: face needs at least 3 vertices, got %d", lineNo, len(fields)-1)
			}
			face := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				idxStr := tok
				if slash := strings.IndexByte(tok, '/'); slash >= 0 {
					idxStr = tok[:slash]
				}
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("mesh: obj line %d: %w", lineNo, err)
				}
				if idx < 0 {
					idx = len(o.vertices) + idx
				} else {
					idx--
				}
				face = append(face, idx)
			}
			o.faces = append(o.faces, face)
		default:
			// vt, vn, g, usemtl, mtllib, s, o, etc. are ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading obj: %w", err)
	}
	return o, nil
}

func (o *Obj) Build() ([]geom.Vector3, [][]int) {
	return o.vertices, o.faces
}

// BuildObj triangulates an Obj builder with no octant offset, then
// translates the result by -bounds.min so it sits flush with the origin,
// per the load_obj boundary contract.
func BuildObj(o *Obj) ([]geom.Vector3, []geom.Triangle) {
	verts, tris := Triangulate(o.vertices, o.faces, geom.Vec3(0, 0, 0))
	if len(verts) == 0 {
		return verts, tris
	}
	min := verts[0]
	for _, v := range verts[1:] {
		min = min.Min(v)
	}
	offset := min.MulScalar(-1)
	out := make([]geom.Vector3, len(verts))
	for i, v := range verts {
		out[i] = v.Add(offset)
	}
	return out, tris
}
