// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/scenetree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Engine is the process-wide owner of the root Node, the live RenderTree,
// and the EventServer. It holds the single-writer lock a Transaction
// acquires for its lifetime, so mutations to the node tree, the render
// tree, and the event log always see a consistent picture.
type Engine struct {
	mu     sync.Mutex
	root   *scenetree.Node
	rt     *rendertree.RenderTree
	events *EventServer
}

// NewEngine constructs an Engine rooted at root, with an empty RenderTree
// and a fresh EventServer.
func NewEngine(root *scenetree.Node) *Engine {
	return &Engine{root: root, rt: rendertree.New(), events: NewEventServer()}
}

// EventServer returns the engine's event log, for registering listeners.
func (e *Engine) EventServer() *EventServer { return e.events }

// Begin acquires the engine's write lock and returns a Transaction
// snapshotting the current RenderTree. The caller must call End exactly
// once (typically via defer) to release the lock.
//
// Begin invalidates the live RenderTree from the root down, matching the
// original's NodeTransaction constructor: Render always rebuilds every
// path from scratch, so a node removed during this transaction leaves no
// ghost path behind for a later ChildrenOf/ancestor query to trip over,
// and its disappearance shows up as a Remove event in the diff against
// the pre-invalidation snapshot taken just above.
func (e *Engine) Begin() *Transaction {
	e.mu.Lock()
	snapshot := e.rt.Clone()
	e.rt.InvalidateParentAndChildPos(e.root.Path())
	return &Transaction{engine: e, snapshot: snapshot}
}

// Transaction captures a RenderTree snapshot at construction; the caller
// mutates the live Node tree through Root(), then calls Render to apply
// the change and emit events. Transactions never auto-render on End —
// a dropped, unrendered transaction releases the lock without emitting
// any event, since Render is what rebuilds the live RenderTree and diffs
// against the snapshot. The live RenderTree stays as Begin left it
// (cleared), and Node edits made through Root() remain in the tree.
type Transaction struct {
	engine   *Engine
	snapshot *rendertree.RenderTree
	done     bool
}

// Root exposes the live Node tree for construct/remove/template/attribute
// edits.
func (t *Transaction) Root() *scenetree.Node { return t.engine.root }

// End releases the engine lock. Safe to call more than once; only the
// first call has effect, so a deferred End composes with an earlier
// explicit call.
func (t *Transaction) End() {
	if t.done {
		return
	}
	t.done = true
	t.engine.mu.Unlock()
}

// Render walks the Node tree depth-first (AncestorValues propagate down,
// element.Render calls run bottom-up), then diffs the resulting RenderTree
// against the pre-transaction snapshot and appends one Event per changed
// attribute to the EventServer. It returns false iff the EventServer has
// been dropped; the render tree itself is left consistent either way. Any
// attribute-evaluation error aborts the render and is returned as-is — the
// node tree is never mutated by Render itself, so the tree remains usable
// for a retry after the caller fixes the offending attribute.
func (t *Transaction) Render() (bool, error) {
	av := value.NewAncestorValues()
	if err := t.engine.root.Render(t.engine.rt, av); err != nil {
		slog.Error("engine.Transaction.Render: element render failed", "err", err)
		return false, fmt.Errorf("render: %w", err)
	}

	diffs := t.engine.rt.DifferencesFrom(t.snapshot)
	events := make([]Event, len(diffs))
	for i, d := range diffs {
		events[i] = diffToEvent(d)
	}

	ok := t.engine.events.emit(events)
	if !ok {
		slog.Error("engine.Transaction.Render: event server dropped, events discarded", "count", len(events))
	}
	return ok, nil
}
