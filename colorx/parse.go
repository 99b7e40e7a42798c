// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cogentcore-labs/scenelayout/errs"
	"github.com/cogentcore-labs/scenelayout/geom"
)

// ErrInvalidColor is returned when a colour literal cannot be parsed.
var ErrInvalidColor = fmt.Errorf("colorx: %w", errs.ErrInvalidColor)

// Parse parses a colour literal: a named palette entry ("blue5"), or
// "RGBA(r, g, b[, a])" / "(r, g, b[, a])" with 0-255 integer channels and an
// optional float alpha.
func Parse(s string) (geom.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return geom.Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if c, ok := Named(strings.ToLower(s)); ok {
		return c, nil
	}
	inner, ok := rgbaArgs(s)
	if !ok {
		return geom.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return geom.Color{}, fmt.Errorf("%w: %q needs 3 or 4 channels", ErrInvalidColor, s)
	}
	chans := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return geom.Color{}, fmt.Errorf("%w: channel %q out of [0,255]", ErrInvalidColor, parts[i])
		}
		chans[i] = v
	}
	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return geom.Color{}, fmt.Errorf("%w: alpha %q out of [0,1]", ErrInvalidColor, parts[3])
		}
		alpha = a
	}
	return geom.Color{R: uint8(chans[0]), G: uint8(chans[1]), B: uint8(chans[2]), A: alpha}, nil
}

// rgbaArgs strips an optional "RGBA" prefix and the surrounding
// parentheses, returning the comma-separated argument list.
func rgbaArgs(s string) (string, bool) {
	rest := s
	if strings.HasPrefix(strings.ToUpper(s), "RGBA") {
		rest = s[4:]
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
