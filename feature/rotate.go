// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Rotate holds yaw/pitch/roll. "angle"/"degrees" is an alias for yaw.
type Rotate struct {
	Yaw   *value.RelativeFloat
	Pitch *value.RelativeFloat
	Roll  *value.RelativeFloat
}

func NewRotate() *Rotate {
	yaw := value.NewRelativeFloat("yaw", "angle", 0)
	return &Rotate{
		Yaw:   yaw,
		Pitch: value.NewRelativeFloat("pitch", "", 0),
		Roll:  value.NewRelativeFloat("roll", "", 0),
	}
}

func (f *Rotate) Attributes() []value.Cell {
	return []value.Cell{f.Yaw, f.Pitch, f.Roll}
}

// UpdateFromAttributes additionally recognizes "degrees" as a yaw alias,
// alongside Yaw's own "angle" abbreviation.
func (f *Rotate) UpdateFromAttributes(attrs map[string]string) error {
	for name, raw := range attrs {
		if name == "degrees" {
			if err := f.Yaw.SetFromString(raw); err != nil {
				return err
			}
			continue
		}
	}
	return updateCells(f.Attributes(), attrs)
}

func (f *Rotate) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}

// Resolve evaluates yaw/pitch/roll against av and builds the Rotation
// matrix.
func (f *Rotate) Resolve(av *value.AncestorValues) (geom.Rotation, error) {
	yaw, err := f.Yaw.Eval(av, "yaw")
	if err != nil {
		return geom.Identity, err
	}
	pitch, err := f.Pitch.Eval(av, "pitch")
	if err != nil {
		return geom.Identity, err
	}
	roll, err := f.Roll.Eval(av, "roll")
	if err != nil {
		return geom.Identity, err
	}
	return geom.FromYawPitchRoll(yaw, pitch, roll), nil
}
