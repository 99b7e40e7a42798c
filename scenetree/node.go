// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenetree implements the named Node tree (C9): a node owns one
// element, a set of regular children, and a set of templates that are not
// rendered but can be instantiated into children at their recorded
// insertion index. This mirrors the teacher's tree.NodeBase in spirit (a
// named, parent-linked container walked depth-first) but trades its
// reflection-driven generic Node interface for a closed element.Element
// payload, since the scene graph has no need for arbitrary embedding.
package scenetree

import (
	"fmt"

	"github.com/cogentcore-labs/scenelayout/element"
	"github.com/cogentcore-labs/scenelayout/errs"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/value"
)

// Node is a named position in the scene tree that owns one element, plus
// any number of named children and templates. The zero Node is not usable;
// construct with New or NewRoot.
type Node struct {
	name    string
	element element.Element
	parent  *Node

	children         []*Node
	templates        map[string]*Node
	templateInsertAt map[string]int
}

// NewRoot constructs an unparented root node carrying el.
func NewRoot(el element.Element) *Node {
	return &Node{element: el, templates: make(map[string]*Node), templateInsertAt: make(map[string]int)}
}

// Name returns this node's name ("" for the root).
func (n *Node) Name() string { return n.name }

// Element returns the element this node owns.
func (n *Node) Element() element.Element { return n.element }

// SetElement replaces this node's element and invalidates the render tree
// under this node's path, per the teacher-derived rule that attribute and
// structural edits always force a re-render (see RenderTree's coarse
// invalidation, DESIGN.md Open Question 1).
func (n *Node) SetElement(el element.Element, rt *rendertree.RenderTree) {
	n.element = el
	rt.InvalidateParentAndChildPos(n.Path())
}

// Parent returns this node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns this node's distance from the root (0 at the root).
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// Root walks up to and returns the tree root.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Path returns this node's path from the root: parent.Path() + name.
func (n *Node) Path() path.Path {
	if n.parent == nil {
		return path.Root
	}
	return n.parent.Path().AppendPart(n.name)
}

// ChildrenNames returns the names of regular children, in insertion order.
func (n *Node) ChildrenNames() []string {
	out := make([]string, len(n.children))
	for i, c := range n.children {
		out[i] = c.name
	}
	return out
}

func (n *Node) childIndex(name string) int {
	for i, c := range n.children {
		if c.name == name {
			return i
		}
	}
	return -1
}

// HasChild reports whether a regular child named name exists.
func (n *Node) HasChild(name string) bool {
	return n.childIndex(name) >= 0
}

// TryGetChild returns the regular child named name, if any.
func (n *Node) TryGetChild(name string) (*Node, bool) {
	if i := n.childIndex(name); i >= 0 {
		return n.children[i], true
	}
	return nil, false
}

// ConstructChild creates and inserts a new regular child named name, owning
// el, appended after the existing children. It is an error to reuse a
// sibling name already held by a child or a template.
func (n *Node) ConstructChild(name string, el element.Element) (*Node, error) {
	if n.HasChild(name) {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, name)
	}
	if _, ok := n.templates[name]; ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, name)
	}
	child := &Node{name: name, element: el, parent: n, templates: make(map[string]*Node), templateInsertAt: make(map[string]int)}
	appendedAt := len(n.children)
	n.children = append(n.children, child)
	// A plain append always lands at the current end of the list, which
	// may tie a template's recorded insertion index (it was registered
	// right before this append). Ties must not shift: the template keeps
	// its recorded slot so a later MakeTemplate still inserts before this
	// child, matching declaration order.
	n.shiftTemplateIndicesAfter(appendedAt, 1)
	return child, nil
}

// RemoveChild removes the regular child named name, if present, shifting
// every recorded template insertion index past it down by one.
func (n *Node) RemoveChild(name string) {
	i := n.childIndex(name)
	if i < 0 {
		return
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.shiftTemplateIndices(i, -1)
}

// ConstructTemplate registers a new, unrendered template named name, owning
// el. Its insertion index is recorded as the current number of regular
// children, so a later MakeTemplate instantiates it at that position
// relative to children added before it (and after any sibling inserted
// since, per the shift rules in shiftTemplateIndices/ConstructChild).
func (n *Node) ConstructTemplate(name string, el element.Element) (*Node, error) {
	if n.HasChild(name) {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, name)
	}
	if _, ok := n.templates[name]; ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, name)
	}
	tmpl := &Node{name: name, element: el, parent: n, templates: make(map[string]*Node), templateInsertAt: make(map[string]int)}
	n.templates[name] = tmpl
	n.templateInsertAt[name] = len(n.children)
	return tmpl, nil
}

// TryGetTemplate returns the template named name, if registered.
func (n *Node) TryGetTemplate(name string) (*Node, bool) {
	t, ok := n.templates[name]
	return t, ok
}

// TryMakeTemplate instantiates the template named templateName as a new
// regular child named newName, deep-cloning its element and recursively
// cloning its own children/templates. The new child is inserted at the
// index recorded when the template was registered, shifting every
// existing child at or past that index (and every recorded template
// index at or past it) up by one.
func (n *Node) TryMakeTemplate(templateName, newName string) (*Node, error) {
	tmpl, ok := n.templates[templateName]
	if !ok {
		return nil, fmt.Errorf("%w: template %q", errs.ErrNotFound, templateName)
	}
	if n.HasChild(newName) {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, newName)
	}
	if _, ok := n.templates[newName]; ok && newName != templateName {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateChildName, newName)
	}

	idx := n.templateInsertAt[templateName]
	if idx > len(n.children) {
		idx = len(n.children)
	}

	clone := tmpl.cloneSubtree()
	clone.name = newName
	clone.parent = n

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = clone
	n.shiftTemplateIndices(idx, 1)
	return clone, nil
}

// TryGetChildOrMakeTemplate returns the existing regular child named name,
// or, failing that, instantiates it from a same-named template.
func (n *Node) TryGetChildOrMakeTemplate(name string) (*Node, error) {
	if c, ok := n.TryGetChild(name); ok {
		return c, nil
	}
	return n.TryMakeTemplate(name, name)
}

// shiftTemplateIndices adjusts every recorded template insertion index
// that is at or past at: by +1 on insertion (delta=1), by -1 on removal
// (delta=-1). This keeps Template-ordered-insertion symmetric under
// interleaved child/template declarations (spec's invariant: a template
// registered after k children always instantiates at position k, even if
// children are later added or removed before that position).
func (n *Node) shiftTemplateIndices(at, delta int) {
	for name, idx := range n.templateInsertAt {
		if idx >= at {
			n.templateInsertAt[name] = idx + delta
		}
	}
}

// shiftTemplateIndicesAfter is the strict-inequality sibling of
// shiftTemplateIndices, used when a new element lands exactly at position
// at (a plain append) rather than displacing whatever already occupied
// at (an insertion). Only markers strictly past at move.
func (n *Node) shiftTemplateIndicesAfter(at, delta int) {
	for name, idx := range n.templateInsertAt {
		if idx > at {
			n.templateInsertAt[name] = idx + delta
		}
	}
}

// FindDescendant resolves p (relative to n) by walking one part at a time
// through regular children only; templates are never traversed.
func (n *Node) FindDescendant(p path.Path) (*Node, bool) {
	cur := n
	for _, part := range p.Parts() {
		next, ok := cur.TryGetChild(part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// cloneSubtree deep-copies n's element (via element.Element.Clone) and
// recursively clones every regular child and template, rebinding parents.
func (n *Node) cloneSubtree() *Node {
	cp := &Node{
		name:             n.name,
		element:          n.element.Clone(),
		templates:        make(map[string]*Node, len(n.templates)),
		templateInsertAt: make(map[string]int, len(n.templateInsertAt)),
	}
	for _, c := range n.children {
		cc := c.cloneSubtree()
		cc.parent = cp
		cp.children = append(cp.children, cc)
	}
	for name, t := range n.templates {
		ct := t.cloneSubtree()
		ct.parent = cp
		cp.templates[name] = ct
		cp.templateInsertAt[name] = n.templateInsertAt[name]
	}
	return cp
}

// Clone returns a deep copy of the subtree rooted at n, unparented (use as
// a new root, or re-attach manually — Clone itself never mutates n or any
// existing tree).
func (n *Node) Clone() *Node {
	cp := n.cloneSubtree()
	cp.parent = nil
	return cp
}

// UpdateFromAttributes forwards to the owned element's Features().
func (n *Node) UpdateFromAttributes(attrs map[string]string) error {
	return n.element.Features().UpdateFromAttributes(attrs)
}

// Render runs the two-pass traversal rooted at n: top-down, each node's own
// explicitly set (non-defaulted) attribute values are folded into a clone of
// av that is passed to children, seeded with this level's sibling counts;
// bottom-up, each node's element.Render runs against rt once every child
// path is already present. av is the values exported by n's ancestors (not
// n's own); the caller passes value.NewAncestorValues() at the root.
func (n *Node) Render(rt *rendertree.RenderTree, av *value.AncestorValues) error {
	avOut := av.Clone()
	avOut.SeedSiblingCounts(len(n.children))
	n.element.Features().ComputeAndUpdateAncestorValues(avOut)

	for _, c := range n.children {
		if err := c.Render(rt, avOut); err != nil {
			return err
		}
	}
	return n.element.Render(n.Path(), rt, av)
}
