// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorx implements the colour literal grammar from the external
// interfaces boundary: a fixed named palette plus RGBA(...)/(...) literals,
// and the colour-space operations (opacity, darken) that ColorFeature needs.
package colorx

import (
	"github.com/cogentcore-labs/scenelayout/geom"
)

// shade is one 0..9 step of a palette hue.
type shade = [10]geom.Color

func rgb(r, g, b uint8) geom.Color { return geom.Color{R: r, G: g, B: b, A: 1} }

// palette is the fixed named palette: gray0..9, red0..9, ... orange0..9,
// each entry a literal RGB triple. Preserved verbatim from the original
// engine's color_map table (src/color.cpp) — it is part of the external
// contract, not a derived/interpolated approximation.
var palette = map[string]shade{
	"gray": {
		rgb(248, 249, 250), rgb(241, 243, 245), rgb(233, 236, 239), rgb(222, 226, 230), rgb(206, 212, 218),
		rgb(173, 181, 189), rgb(134, 142, 150), rgb(73, 80, 87), rgb(52, 58, 64), rgb(33, 37, 41),
	},
	"red": {
		rgb(255, 245, 245), rgb(255, 227, 227), rgb(255, 201, 201), rgb(255, 168, 168), rgb(255, 135, 135),
		rgb(255, 107, 107), rgb(250, 82, 82), rgb(240, 62, 62), rgb(224, 49, 49), rgb(201, 42, 42),
	},
	"pink": {
		rgb(255, 240, 246), rgb(255, 222, 235), rgb(252, 194, 215), rgb(250, 162, 193), rgb(247, 131, 172),
		rgb(240, 101, 149), rgb(230, 73, 128), rgb(214, 51, 108), rgb(194, 37, 92), rgb(166, 30, 77),
	},
	"grape": {
		rgb(248, 240, 252), rgb(243, 217, 250), rgb(238, 190, 250), rgb(229, 153, 247), rgb(218, 119, 242),
		rgb(204, 93, 232), rgb(190, 75, 219), rgb(174, 62, 201), rgb(156, 54, 181), rgb(134, 46, 156),
	},
	"violet": {
		rgb(243, 240, 255), rgb(229, 219, 255), rgb(208, 191, 255), rgb(177, 151, 252), rgb(151, 117, 250),
		rgb(132, 94, 247), rgb(121, 80, 242), rgb(112, 72, 232), rgb(103, 65, 217), rgb(95, 61, 196),
	},
	"indigo": {
		rgb(237, 242, 255), rgb(219, 228, 255), rgb(186, 200, 255), rgb(145, 167, 255), rgb(116, 143, 252),
		rgb(92, 124, 250), rgb(76, 110, 245), rgb(66, 99, 235), rgb(59, 91, 219), rgb(54, 79, 199),
	},
	"blue": {
		rgb(231, 245, 255), rgb(208, 235, 255), rgb(165, 216, 255), rgb(116, 192, 252), rgb(77, 171, 247),
		rgb(51, 154, 240), rgb(34, 139, 230), rgb(28, 126, 214), rgb(25, 113, 194), rgb(24, 100, 171),
	},
	"cyan": {
		rgb(227, 250, 252), rgb(197, 246, 250), rgb(153, 233, 242), rgb(102, 217, 232), rgb(59, 201, 219),
		rgb(34, 184, 207), rgb(21, 170, 191), rgb(16, 152, 173), rgb(12, 133, 153), rgb(11, 114, 133),
	},
	"teal": {
		rgb(230, 252, 245), rgb(195, 250, 232), rgb(150, 242, 215), rgb(99, 230, 190), rgb(56, 217, 169),
		rgb(32, 201, 151), rgb(18, 184, 134), rgb(12, 166, 120), rgb(9, 146, 104), rgb(8, 127, 91),
	},
	"green": {
		rgb(235, 251, 238), rgb(211, 249, 216), rgb(178, 242, 187), rgb(140, 233, 154), rgb(105, 219, 124),
		rgb(81, 207, 102), rgb(64, 192, 87), rgb(55, 178, 77), rgb(47, 158, 68), rgb(43, 138, 62),
	},
	"lime": {
		rgb(244, 252, 227), rgb(233, 250, 200), rgb(216, 245, 162), rgb(192, 235, 117), rgb(169, 227, 75),
		rgb(148, 216, 45), rgb(130, 201, 30), rgb(116, 184, 22), rgb(102, 168, 15), rgb(92, 148, 13),
	},
	"yellow": {
		rgb(255, 249, 219), rgb(255, 243, 191), rgb(255, 236, 153), rgb(255, 224, 102), rgb(255, 212, 59),
		rgb(252, 196, 25), rgb(250, 176, 5), rgb(245, 159, 0), rgb(240, 140, 0), rgb(230, 119, 0),
	},
	"orange": {
		rgb(255, 244, 230), rgb(255, 232, 204), rgb(255, 216, 168), rgb(255, 192, 120), rgb(255, 169, 77),
		rgb(255, 146, 43), rgb(253, 126, 20), rgb(247, 103, 7), rgb(232, 89, 12), rgb(217, 72, 15),
	},
}

// overrides holds deployment-specific palette replacements installed by
// Override (via config.Config.Apply); checked before the built-in palette
// so a config file can redefine individual shades without needing to
// override the whole hue family.
var overrides = map[string]geom.Color{}

// Named looks up a palette colour like "blue5" or "gray0", checking
// process-wide overrides first. ok is false if the name does not match any
// shade.
func Named(name string) (geom.Color, bool) {
	if c, ok := overrides[name]; ok {
		return c, true
	}
	if len(name) < 2 {
		return geom.Color{}, false
	}
	hue := name[:len(name)-1]
	digit := name[len(name)-1]
	if digit < '0' || digit > '9' {
		return geom.Color{}, false
	}
	shades, ok := palette[hue]
	if !ok {
		return geom.Color{}, false
	}
	return shades[digit-'0'], true
}

// Override installs a process-wide replacement for the named palette
// entry (e.g. "blue5"), checked ahead of the built-in palette by Named.
func Override(name string, c geom.Color) {
	overrides[name] = c
}
