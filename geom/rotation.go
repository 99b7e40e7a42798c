// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Rotation is a Tait-Bryan yaw-pitch-roll rotation, stored as a 3x3 matrix
// in row-major order. Equality is matrix-equal; composition is matrix
// product.
type Rotation struct {
	m [9]float64 // row-major: m[row*3+col]
}

// Identity is the zero rotation.
var Identity = Rotation{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// FromYawPitchRoll builds the rotation matrix for the given yaw (around Y),
// pitch (around X), and roll (around Z), all in degrees, composed in
// yaw * pitch * roll order.
func FromYawPitchRoll(yawDeg, pitchDeg, rollDeg float64) Rotation {
	y := degToRad(yawDeg)
	p := degToRad(pitchDeg)
	r := degToRad(rollDeg)

	cy, sy := math.Cos(y), math.Sin(y)
	cp, sp := math.Cos(p), math.Sin(p)
	cr, sr := math.Cos(r), math.Sin(r)

	ry := Rotation{m: [9]float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	}}
	rx := Rotation{m: [9]float64{
		1, 0, 0,
		0, cp, -sp,
		0, sp, cp,
	}}
	rz := Rotation{m: [9]float64{
		cr, -sr, 0,
		sr, cr, 0,
		0, 0, 1,
	}}
	return ry.Compose(rx).Compose(rz)
}

// Compose returns the matrix product r * other (apply other first, then r).
func (r Rotation) Compose(other Rotation) Rotation {
	var out Rotation
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += r.m[row*3+k] * other.m[k*3+col]
			}
			out.m[row*3+col] = sum
		}
	}
	return out
}

// Apply rotates v by the matrix.
func (r Rotation) Apply(v Vector3) Vector3 {
	return Vector3{
		X: r.m[0]*v.X + r.m[1]*v.Y + r.m[2]*v.Z,
		Y: r.m[3]*v.X + r.m[4]*v.Y + r.m[5]*v.Z,
		Z: r.m[6]*v.X + r.m[7]*v.Y + r.m[8]*v.Z,
	}
}

// Equal reports whether every matrix entry matches within Epsilon.
func (r Rotation) Equal(other Rotation) bool {
	for i := range r.m {
		if math.Abs(r.m[i]-other.m[i]) > Epsilon {
			return false
		}
	}
	return true
}

// YawPitchRollDegrees decomposes the matrix back into yaw/pitch/roll
// degrees. Gimbal lock is not resolved (Open Question 2 — a known,
// documented limitation carried over unchanged from the original engine):
// at a pitch of ±90 degrees yaw and roll cannot be separated, so roll is
// reported as 0 and yaw carries their combined angle.
func (r Rotation) YawPitchRollDegrees() (yaw, pitch, roll float64) {
	// m[row*3+col], assembled as Ry * Rx * Rz above.
	pitch = math.Asin(clampUnit(-r.m[5]))
	if math.Abs(r.m[5]) < 0.999999 {
		yaw = math.Atan2(r.m[2], r.m[8])
		roll = math.Atan2(r.m[3], r.m[4])
	} else {
		// gimbal lock: yaw and roll collapse to a single degree of freedom.
		yaw = math.Atan2(-r.m[6], r.m[0])
		roll = 0
	}
	return radToDeg(yaw), radToDeg(pitch), radToDeg(roll)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
