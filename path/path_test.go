// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/path"
)

func TestParseRoot(t *testing.T) {
	p, err := path.Parse(".")
	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.Equal(t, ".", p.String())

	p2, err := path.Parse("")
	require.NoError(t, err)
	assert.True(t, p2.Empty())
}

func TestParseParts(t *testing.T) {
	p, err := path.Parse(".a.b.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, p.Parts())
	assert.Equal(t, ".a.b.c", p.String())
}

func TestParseAdjacentSeparatorFails(t *testing.T) {
	_, err := path.Parse("a..b")
	assert.Error(t, err)
	_, err = path.Parse(".a..b")
	assert.Error(t, err)
}

func TestIsDescendantOf(t *testing.T) {
	a := path.New("a")
	assert.True(t, a.IsDescendantOf(a, true))
	assert.False(t, a.IsDescendantOf(a, false))

	ab := path.New("a", "b")
	assert.True(t, ab.IsDescendantOf(a, false))
	assert.True(t, ab.IsDescendantOf(a, true))
	assert.False(t, a.IsDescendantOf(ab, true))
}

func TestIsChildOf(t *testing.T) {
	a := path.New("a")
	ab := path.New("a", "b")
	abc := path.New("a", "b", "c")
	assert.True(t, ab.IsChildOf(a))
	assert.False(t, abc.IsChildOf(a))
}

func TestConcatAndSub(t *testing.T) {
	a := path.New("a", "b")
	b := path.New("c", "d")
	joined := a.Concat(b)
	assert.Equal(t, ".a.b.c.d", joined.String())
	assert.True(t, joined.DropFirst(a.Size()).Equal(b))
	assert.True(t, joined.Sub(a).Equal(b))
}

func TestCommonAncestor(t *testing.T) {
	a := path.New("a", "b", "x")
	b := path.New("a", "b", "y")
	ca := a.CommonAncestorWith(b)
	assert.True(t, ca.Equal(path.New("a", "b")))
	assert.True(t, ca.Equal(b.CommonAncestorWith(a)))
	assert.True(t, a.CommonAncestorWith(a).Equal(a))
}

func TestTotalOrder(t *testing.T) {
	a := path.New("a")
	ab := path.New("a", "b")
	b := path.New("b")
	assert.True(t, a.Less(ab))
	assert.True(t, b.Less(ab))
	assert.True(t, a.Less(b))
}

func TestAncestorPaths(t *testing.T) {
	p := path.New("a", "b", "c")
	anc := p.AncestorPaths(false)
	require.Len(t, anc, 3)
	assert.True(t, anc[0].Equal(path.New("a", "b")))
	assert.True(t, anc[1].Equal(path.New("a")))
	assert.True(t, anc[2].Equal(path.Root))
}

func TestHashStableWithinProcess(t *testing.T) {
	a := path.New("a", "b")
	b := path.New("a", "b")
	assert.Equal(t, a.Hash(), b.Hash())
}
