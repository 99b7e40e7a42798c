// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore-labs/scenelayout/element"
	"github.com/cogentcore-labs/scenelayout/engine"
	"github.com/cogentcore-labs/scenelayout/scenetree"
)

func newEngine() *engine.Engine {
	root := scenetree.NewRoot(element.NewNoLayout())
	return engine.NewEngine(root)
}

func TestTransactionAddThenRemoveEmitEvents(t *testing.T) {
	e := newEngine()
	listener := e.EventServer().NewListener(engine.ReceiveAll)

	tx := e.Begin()
	_, err := tx.Root().ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	ok, err := tx.Render()
	require.NoError(t, err)
	require.True(t, ok)
	tx.End()

	ev, _, found := listener.TryPop()
	require.True(t, found)
	assert.Equal(t, engine.Add, ev.Kind)
	assert.True(t, ev.Geometry.Drawable())

	_, _, found = listener.TryPop()
	assert.False(t, found)

	tx2 := e.Begin()
	tx2.Root().RemoveChild("a")
	ok, err = tx2.Render()
	require.NoError(t, err)
	require.True(t, ok)
	tx2.End()

	ev, _, found = listener.TryPop()
	require.True(t, found)
	assert.Equal(t, engine.Remove, ev.Kind)
}

func TestSkipNonDrawableFilterHidesAggregateEvent(t *testing.T) {
	root := scenetree.NewRoot(element.NewJuxtapose())
	e := engine.NewEngine(root)
	skip := e.EventServer().NewListener(engine.SkipNonDrawable)
	all := e.EventServer().NewListener(engine.ReceiveAll)

	tx := e.Begin()
	_, err := tx.Root().ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	ok, err := tx.Render()
	require.NoError(t, err)
	require.True(t, ok)
	tx.End()

	var skipKinds, allKinds []engine.Kind
	for {
		ev, _, found := skip.TryPop()
		if !found {
			break
		}
		skipKinds = append(skipKinds, ev.Kind)
	}
	for {
		ev, _, found := all.TryPop()
		if !found {
			break
		}
		allKinds = append(allKinds, ev.Kind)
	}

	assert.Equal(t, []engine.Kind{engine.Add}, skipKinds)
	assert.Len(t, allKinds, 2)
}

func TestTrimDropsEventsConsumedByEveryListener(t *testing.T) {
	e := newEngine()
	l1 := e.EventServer().NewListener(engine.ReceiveAll)
	l2 := e.EventServer().NewListener(engine.ReceiveAll)

	tx := e.Begin()
	_, err := tx.Root().ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	_, err = tx.Render()
	require.NoError(t, err)
	tx.End()

	require.Equal(t, 1, e.EventServer().Size())

	_, tok1, found := l1.TryPop()
	require.True(t, found)
	assert.Equal(t, 0, e.EventServer().Trim(tok1))

	_, _, found = l2.TryPop()
	require.True(t, found)
	assert.Equal(t, 1, e.EventServer().Trim(tok1))
	assert.Equal(t, 0, e.EventServer().Size())
}

func TestWaitForEventUnblocksWhenTransactionRenders(t *testing.T) {
	e := newEngine()
	listener := e.EventServer().NewListener(engine.ReceiveAll)

	result := make(chan engine.Kind, 1)
	go func() {
		ev, ok := listener.WaitForEvent()
		if !ok {
			return
		}
		result <- ev.Kind
	}()

	tx := e.Begin()
	_, err := tx.Root().ConstructChild("a", element.NewBox())
	require.NoError(t, err)
	_, err = tx.Render()
	require.NoError(t, err)
	tx.End()

	select {
	case k := <-result:
		assert.Equal(t, engine.Add, k)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestTryWaitForEventForTimesOutWithNoEvents(t *testing.T) {
	e := newEngine()
	listener := e.EventServer().NewListener(engine.ReceiveAll)

	_, ok := listener.TryWaitForEventFor(20 * time.Millisecond)
	assert.False(t, ok)
}

func TestWaitForEventReturnsFalseWhenServerDropped(t *testing.T) {
	e := newEngine()
	listener := e.EventServer().NewListener(engine.ReceiveAll)

	done := make(chan bool, 1)
	go func() {
		_, ok := listener.WaitForEvent()
		done <- ok
	}()

	e.EventServer().Drop()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for drop to unblock listener")
	}
}
