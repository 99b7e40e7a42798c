// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Base is the common header every typed attribute cell embeds: its full
// name, short alias, and whether it has been explicitly set yet.
type Base struct {
	Name         string
	Abbreviation string
	defaulted    bool
}

// NewBase constructs a Base that starts out defaulted (unset).
func NewBase(name, abbreviation string) Base {
	return Base{Name: name, Abbreviation: abbreviation, defaulted: true}
}

// MatchesAttributeName reports whether name is this cell's full name or its
// abbreviation.
func (b Base) MatchesAttributeName(name string) bool {
	return name == b.Name || (b.Abbreviation != "" && name == b.Abbreviation)
}

// Defaulted reports whether this cell has never been explicitly set.
func (b Base) Defaulted() bool {
	return b.defaulted
}

// MarkSet flips the defaulted flag off; called by every successful setter.
func (b *Base) MarkSet() {
	b.defaulted = false
}
