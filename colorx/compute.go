// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorx

import (
	"github.com/cogentcore-labs/scenelayout/geom"
)

// Compute implements ColorFeature.compute_color: apply opacity, then darken
// by scaling rgb by (1 - darkness), per the literal formula in spec §4.3.
func Compute(c geom.Color, opacity, darkness float64) geom.Color {
	return c.WithOpacity(opacity).Darken(darkness)
}
