// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

// Splitter is a container child between two panels translating a
// pointer drag into resize messages for its container.  A host reports
// pointer events to the splitter it has captured the pointer for:
//
//	s.Press(p) // on mouse button down over the splitter
//	s.Move(p)  // for each following pointer move
//	s.Release(p)
type Splitter struct {
	propagate bool
	active    bool
	idx       int
	sink      func(Message)
}

// NewSplitter creates a splitter which lets resize pressure pass to
// the next splitter if propagate is true and that splitter propagates
// as well.
func NewSplitter(propagate bool) *Splitter {
	return &Splitter{propagate: propagate, idx: -1}
}

// Index returns the splitter's position in its container or -1.
func (s *Splitter) Index() int { return s.idx }

// Propagate returns true if the splitter passes on resize pressure.
func (s *Splitter) Propagate() bool { return s.propagate }

// Active returns true while the splitter is dragged.
func (s *Splitter) Active() bool { return s.active }

// Press starts a drag session at given pointer position.
func (s *Splitter) Press(p Pointer) {
	if s.active || s.sink == nil {
		return
	}
	s.active = true
	s.sink(Message{Kind: StartResize, Index: s.idx, Pointer: p})
}

// Move reports given pointer position of an open drag session.
func (s *Splitter) Move(p Pointer) {
	if !s.active {
		return
	}
	s.sink(Message{Kind: Resize, Index: s.idx, Pointer: p})
}

// Release ends an open drag session.
func (s *Splitter) Release(p Pointer) {
	if !s.active {
		return
	}
	s.active = false
	s.sink(Message{Kind: StopResize, Index: s.idx, Pointer: p})
}

func (s *Splitter) slot() slot {
	return slot{splitter: true, propagate: s.propagate}
}

func (s *Splitter) bind(c *Container, idx int) {
	s.idx, s.sink = idx, c.handle
}
