// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "github.com/cogentcore-labs/scenelayout/value"

// Text holds the text content cell.
type Text struct {
	Text *value.StringValue
}

func NewText() *Text {
	return &Text{Text: value.NewStringValue("text", "", "")}
}

func (f *Text) Attributes() []value.Cell { return []value.Cell{f.Text} }

func (f *Text) UpdateFromAttributes(attrs map[string]string) error {
	return updateCells(f.Attributes(), attrs)
}

func (f *Text) ComputeAndUpdateAncestorValues(av *value.AncestorValues) {
	for _, c := range f.Attributes() {
		c.UpdateAncestorValues(av)
	}
}
