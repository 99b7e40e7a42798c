// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/element"
	"github.com/cogentcore-labs/scenelayout/errs"
	"github.com/cogentcore-labs/scenelayout/path"
	"github.com/cogentcore-labs/scenelayout/rendertree"
	"github.com/cogentcore-labs/scenelayout/scenetree"
	"github.com/cogentcore-labs/scenelayout/value"
)

func TestConstructAndRemoveChild(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	_, err := root.ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	assert.True(t, root.HasChild("a"))

	_, err = root.ConstructChild("a", element.NewBox())
	assert.ErrorIs(t, err, errs.ErrDuplicateChildName)

	root.RemoveChild("a")
	assert.False(t, root.HasChild("a"))
}

func TestFindDescendant(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	a, _ := root.ConstructChild("a", element.NewNoLayout())
	_, _ = a.ConstructChild("b", element.NewBox())

	p, err := path.Parse(".a.b")
	require.NoError(t, err)
	found, ok := root.FindDescendant(p)
	require.True(t, ok)
	assert.Equal(t, "b", found.Name())
}

func TestTemplateOrderedInsertion(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	_, err := root.ConstructChild("first", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructTemplate("T", element.NewBox())
	require.NoError(t, err)
	_, err = root.ConstructChild("third", element.NewBox())
	require.NoError(t, err)
	_, err = root.TryMakeTemplate("T", "second_first")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second_first", "third"}, root.ChildrenNames())
}

func TestTryMakeTemplateUnknownNameErrors(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	_, err := root.TryMakeTemplate("missing", "x")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTryGetChildOrMakeTemplateFallsBackToTemplate(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	_, err := root.ConstructTemplate("house", element.NewBox())
	require.NoError(t, err)

	child, err := root.TryGetChildOrMakeTemplate("house")
	require.NoError(t, err)
	assert.Equal(t, "house", child.Name())
	assert.True(t, root.HasChild("house"))

	again, err := root.TryGetChildOrMakeTemplate("house")
	require.NoError(t, err)
	assert.Same(t, child, again)
}

func TestCloneDeepCopiesChildrenAndTemplates(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	_, _ = root.ConstructChild("a", element.NewBox())
	_, _ = root.ConstructTemplate("t", element.NewBox())

	clone := root.Clone()
	clone.RemoveChild("a")

	assert.True(t, root.HasChild("a"))
	assert.False(t, clone.HasChild("a"))
	_, ok := clone.TryGetTemplate("t")
	assert.True(t, ok)
}

func TestRenderWalksChildrenBeforeParent(t *testing.T) {
	root := scenetree.NewRoot(element.NewNoLayout())
	a, _ := root.ConstructChild("a", element.NewBox())
	b := a.Element().(*element.Box)
	require.NoError(t, b.Size.Width.SetString("2"))
	require.NoError(t, b.Size.Height.SetString("3"))
	require.NoError(t, b.Size.Depth.SetString("4"))

	rt := rendertree.New()
	require.NoError(t, root.Render(rt, value.NewAncestorValues()))

	p, _ := path.Parse(".a")
	g, ok := rt.Get(p)
	require.True(t, ok)
	assert.Len(t, g.Vertices, 8)
}
