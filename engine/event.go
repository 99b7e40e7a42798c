// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the transactional render pipeline (C11): a
// Transaction that snapshots the RenderTree, lets the caller mutate the
// Node tree, renders, and diffs against the snapshot to produce Events on
// an append-only EventServer that any number of EventListeners drain at
// their own pace. Engine owns the single process-wide writer lock.
package engine

import (
	"github.com/cogentcore-labs/scenelayout/geom"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
)

// Kind tags why an Event was emitted.
type Kind int

const (
	Add Kind = iota
	Remove
	Move
	Resize
	Recolor
	Retext
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Move:
		return "move"
	case Resize:
		return "resize"
	case Recolor:
		return "recolor"
	case Retext:
		return "retext"
	default:
		return "unknown"
	}
}

// Event is one primitive RenderTree change surfaced to listeners.
type Event struct {
	Path     path.Path
	Geometry geom.Geometry
	Kind     Kind
}

// diffToEvent maps one RenderTree difference onto the Event it produces,
// per the RenderDifference -> EventType table: SecondMissing -> Add (new),
// FirstMissing -> Remove (old), Pos -> Move (new), Bounds -> Resize (new),
// Color -> Recolor (new), Text -> Retext (new).
func diffToEvent(d rendertree.Difference) Event {
	switch d.Kind {
	case rendertree.SecondMissing:
		return Event{Path: d.Path, Geometry: d.Self, Kind: Add}
	case rendertree.FirstMissing:
		return Event{Path: d.Path, Geometry: d.Other, Kind: Remove}
	case rendertree.DiffPos:
		return Event{Path: d.Path, Geometry: d.Self, Kind: Move}
	case rendertree.DiffBounds:
		return Event{Path: d.Path, Geometry: d.Self, Kind: Resize}
	case rendertree.DiffColor:
		return Event{Path: d.Path, Geometry: d.Self, Kind: Recolor}
	default: // DiffText
		return Event{Path: d.Path, Geometry: d.Self, Kind: Retext}
	}
}
