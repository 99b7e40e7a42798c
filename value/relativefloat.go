// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cogentcore-labs/scenelayout/errs"
)

// RelativeFloat is an attribute that may be a literal number, a
// percentage-of-ancestor, or a symbolic reference to another attribute's
// computed value (optionally itself a percentage).
//
// Grammar: [+-]?[0-9]+(\.[0-9]+)? , optionally followed by a symbolic name,
// optionally suffixed by '%'. Examples: "10", "2width", "90%", "0.5height".
type RelativeFloat struct {
	Base

	// Literal is the resolved literal value when RelativeName == "" and
	// !IsPercentage.
	Literal float64

	Multiplier   float64
	IsPercentage bool
	RelativeName string // "" if not relative to another attribute
}

var numberPrefixRe = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?`)

// NewRelativeFloat constructs a RelativeFloat with a literal default.
func NewRelativeFloat(name, abbr string, def float64) *RelativeFloat {
	return &RelativeFloat{Base: NewBase(name, abbr), Literal: def, Multiplier: 1}
}

// SetString parses s per the grammar and, only if the whole parse succeeds,
// commits the new state (transactional update — a failed parse leaves the
// existing value untouched).
func (v *RelativeFloat) SetString(s string) error {
	parsed, err := parseRelativeFloat(s)
	if err != nil {
		return err
	}
	v.Literal = parsed.Literal
	v.Multiplier = parsed.Multiplier
	v.IsPercentage = parsed.IsPercentage
	v.RelativeName = parsed.RelativeName
	v.MarkSet()
	return nil
}

// SetFromString satisfies Cell; it is an alias of SetString.
func (v *RelativeFloat) SetFromString(s string) error {
	return v.SetString(s)
}

// SetLiteral sets a plain literal value (not relative, not a percentage).
func (v *RelativeFloat) SetLiteral(f float64) {
	v.Literal = f
	v.Multiplier = 1
	v.IsPercentage = false
	v.RelativeName = ""
	v.MarkSet()
}

func parseRelativeFloat(s string) (RelativeFloat, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return RelativeFloat{}, fmt.Errorf("%w: empty value", errs.ErrInvalidAttributeValue)
	}

	isPercentage := strings.HasSuffix(s, "%")
	if isPercentage {
		s = strings.TrimSuffix(s, "%")
	}

	multiplier := 1.0
	relativeName := ""

	numMatch := numberPrefixRe.FindString(s)
	rest := strings.TrimSpace(s[len(numMatch):])

	if numMatch == "" {
		if isPercentage {
			return RelativeFloat{}, fmt.Errorf("%w: percentage without a number: %q", errs.ErrInvalidAttributeValue, orig)
		}
		if rest == "" {
			return RelativeFloat{}, fmt.Errorf("%w: %q", errs.ErrInvalidAttributeValue, orig)
		}
		relativeName = rest
	} else {
		m, err := strconv.ParseFloat(numMatch, 64)
		if err != nil {
			return RelativeFloat{}, fmt.Errorf("%w: %q: %v", errs.ErrInvalidAttributeValue, orig, err)
		}
		multiplier = m
		if rest != "" {
			relativeName = rest
		}
	}

	out := RelativeFloat{Multiplier: multiplier, IsPercentage: isPercentage, RelativeName: relativeName}
	if relativeName == "" && !isPercentage {
		out.Literal = multiplier
		out.Multiplier = 1
	}
	return out, nil
}

// UpdateAncestorValues registers the resolved literal form into av if this
// cell has been explicitly set. Relative values are not themselves resolved
// at propagation time — Eval is called separately by the element that owns
// this attribute, against the AncestorValues assembled from its ancestors.
func (v *RelativeFloat) UpdateAncestorValues(av *AncestorValues) {
	if v.Defaulted() {
		return
	}
	if v.RelativeName == "" && !v.IsPercentage {
		av.SetFloat(v.Name, v.Literal)
	}
}

// Eval resolves the relative value against AncestorValues av, where
// ownName is the name under which this attribute's own resolved value would
// be exported (needed for the own-attribute percentage case).
//
//	if not relative:
//	    base = is_percentage ? multiplier : value * multiplier
//	else:
//	    base = A.get_float(relative_name) * multiplier
//	if is_percentage:
//	    base = A.get_float(own_name) * base / 100
func (v *RelativeFloat) Eval(av *AncestorValues, ownName string) (float64, error) {
	var base float64
	if v.RelativeName == "" {
		if v.IsPercentage {
			base = v.Multiplier
		} else {
			base = v.Literal * v.Multiplier
		}
	} else {
		rel, err := av.GetFloat(v.RelativeName)
		if err != nil {
			return 0, err
		}
		base = rel * v.Multiplier
	}
	if v.IsPercentage {
		own, err := av.GetFloat(ownName)
		if err != nil {
			return 0, err
		}
		base = own * base / 100
	}
	return base, nil
}

// IsRelative reports whether this value references another attribute by
// name (as opposed to being a plain literal or own-percentage).
func (v *RelativeFloat) IsRelative() bool {
	return v.RelativeName != ""
}
