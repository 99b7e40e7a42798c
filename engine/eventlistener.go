// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "time"

// Filter selects which events a listener observes.
type Filter int

const (
	// ReceiveAll delivers every event.
	ReceiveAll Filter = iota
	// SkipNonDrawable skips events whose geometry carries no vertices
	// (pure layout carriers such as a Juxtapose aggregator).
	SkipNonDrawable
)

// EventListener tracks one consumer's position in an EventServer's log.
type EventListener struct {
	server *EventServer
	cursor uint64
	filter Filter
}

// Close deregisters this listener's cursor from its server. Safe to call
// at any time; listener destruction never needs to coordinate with
// in-flight transactions.
func (l *EventListener) Close() {
	l.server.deregister(l)
}

func (l *EventListener) matches(e Event) bool {
	if l.filter == SkipNonDrawable {
		return e.Geometry.Drawable()
	}
	return true
}

// tryPopLocked assumes the server's mutex is held. It advances the
// listener's cursor past every non-matching event until it either finds a
// matching one (returned, cursor left just past it) or exhausts the log
// (cursor left at the log's current tail).
func (l *EventListener) tryPopLocked() (Event, uint64, bool) {
	for _, le := range l.server.log {
		if le.token <= l.cursor {
			continue
		}
		l.cursor = le.token
		if l.matches(le.event) {
			return le.event, le.token, true
		}
	}
	return Event{}, l.cursor, false
}

// TryPop advances past the next matching event, if one is available, and
// returns it along with its token. It never blocks.
func (l *EventListener) TryPop() (Event, uint64, bool) {
	l.server.mu.Lock()
	defer l.server.mu.Unlock()
	return l.tryPopLocked()
}

// WaitForEvent blocks until a matching event is available or the server
// is dropped, in which case ok is false.
func (l *EventListener) WaitForEvent() (Event, bool) {
	s := l.server
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.dropped {
			return Event{}, false
		}
		if e, _, ok := l.tryPopLocked(); ok {
			return e, true
		}
		s.cond.Wait()
	}
}

// TryWaitForEventFor blocks until a matching event is available, the
// server is dropped, or timeout elapses, whichever comes first. A timer
// broadcasts the condition variable on expiry so this waiter (and any
// other) wakes up to recheck its own deadline, rather than blocking
// sync.Cond.Wait indefinitely with no way to time it out.
func (l *EventListener) TryWaitForEventFor(timeout time.Duration) (Event, bool) {
	s := l.server
	deadline := time.Now().Add(timeout)
	timer := time.AfterFunc(timeout, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer timer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.dropped {
			return Event{}, false
		}
		if e, _, ok := l.tryPopLocked(); ok {
			return e, true
		}
		if !time.Now().Before(deadline) {
			return Event{}, false
		}
		s.cond.Wait()
	}
}
