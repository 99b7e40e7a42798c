// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "sync"

type loggedEvent struct {
	token uint64
	event Event
}

// EventServer is the append-only log transactions write to and listeners
// drain. The log and the listener-cursor bookkeeping share one mutex, plus
// a condition variable that WaitForEvent/TryWaitForEventFor block on.
//
// Engine uniquely owns an EventServer; listeners and transactions only ever
// hold a plain *EventServer pointer rather than a weak reference — Go's GC
// does not need a weak-ref dance to avoid keeping the server alive, unlike
// the reference-counted original this is grounded on.
type EventServer struct {
	mu        sync.Mutex
	cond      *sync.Cond
	log       []loggedEvent
	nextToken uint64
	listeners map[*EventListener]struct{}
	dropped   bool
}

// NewEventServer constructs an empty, live EventServer.
func NewEventServer() *EventServer {
	s := &EventServer{listeners: make(map[*EventListener]struct{})}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// emit appends events atomically: either all of them become visible to
// readers, or (if the server has been dropped) none do.
func (s *EventServer) emit(events []Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dropped {
		return false
	}
	for _, e := range events {
		s.nextToken++
		s.log = append(s.log, loggedEvent{token: s.nextToken, event: e})
	}
	if len(events) > 0 {
		s.cond.Broadcast()
	}
	return true
}

// Drop marks the server as gone. Outstanding and future listener
// operations report a non-fatal "server gone" result instead of blocking
// forever.
func (s *EventServer) Drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropped = true
	s.cond.Broadcast()
}

// NewListener registers a listener whose cursor starts at the server's
// current token, so it only observes events emitted from this point on.
func (s *EventServer) NewListener(filter Filter) *EventListener {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := &EventListener{server: s, cursor: s.nextToken, filter: filter}
	s.listeners[l] = struct{}{}
	return l
}

// deregister removes l from the live-listener set, called by
// EventListener.Close.
func (s *EventServer) deregister(l *EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, l)
}

// Trim drops every logged event with a token <= upTo, clamped down to the
// lowest cursor among currently-registered listeners so that no listener
// ever loses an event it hasn't consumed yet. It returns the number of
// entries actually dropped. The engine owner may call this periodically;
// nothing in the pipeline calls it automatically.
func (s *EventServer) Trim(upTo uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	safe := upTo
	for l := range s.listeners {
		if l.cursor < safe {
			safe = l.cursor
		}
	}
	n := 0
	for n < len(s.log) && s.log[n].token <= safe {
		n++
	}
	s.log = s.log[n:]
	return n
}

// Size returns the number of events currently retained in the log.
func (s *EventServer) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.log)
}
