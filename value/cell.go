// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Cell is the common interface every typed attribute cell satisfies: it
// can be addressed by name or abbreviation, parsed from a string, and
// (if explicitly set) contributed to an AncestorValues map.
type Cell interface {
	MatchesAttributeName(name string) bool
	SetFromString(s string) error
	UpdateAncestorValues(av *AncestorValues)
}

var (
	_ Cell = (*BoolValue)(nil)
	_ Cell = (*IntValue)(nil)
	_ Cell = (*StringValue)(nil)
	_ Cell = (*ColorValue)(nil)
	_ Cell = (*AxisValue)(nil)
	_ Cell = (*AlignmentValue)(nil)
	_ Cell = (*UnitIntervalValue)(nil)
	_ Cell = (*RelativeFloat)(nil)
)
