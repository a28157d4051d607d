// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen provides features to write to a line-based terminal
// user-interface.
type Screen struct {
	lib        tcell.Screen
	errScr     *ErrScr
	minW, minH int
	dirty      []*Line
	cleared    bool
}

// Size returns the width and height of wrapped terminal screen.  Note
// the simulation screen defaults to 80x25.
func (s *Screen) Size() (width, height int) { return s.lib.Size() }

// Box returns a box of lines covering given area clipped to the
// screen.  A new box's lines are blank and are written to the screen
// at the next synchronization.
func (s *Screen) Box(x, y, width, height int) *Box {
	w, h := s.Size()
	b := &Box{X: x, Y: y, Width: clip(x, width, w),
		Height: clip(y, height, h)}
	for i := 0; i < b.Height; i++ {
		l := &Line{scr: s, x: x, y: y + i, width: b.Width}
		l.queue()
		b.ll = append(b.ll, l)
	}
	return b
}

func clip(start, extent, max int) int {
	if start < 0 || start >= max || extent <= 0 {
		return 0
	}
	if start+extent > max {
		return max - start
	}
	return extent
}

// Clear blanks the screen at the next synchronization discarding all
// pending line updates.
func (s *Screen) Clear() {
	s.cleared = true
	for _, l := range s.dirty {
		l.dirty = false
	}
	s.dirty = nil
}

// SetMin defines the minimal expected screen size.  An error is
// displayed and event reporting is suppressed as long as the screen is
// smaller.
func (s *Screen) SetMin(width, height int) {
	s.minW, s.minH = width, height
	if !s.ToSmall() {
		return
	}
	s.minErr()
}

// ToSmall returns true if a set minimal screen size is greater than
// the available screen size.
func (s *Screen) ToSmall() bool {
	w, h := s.Size()
	return w < s.minW || h < s.minH
}

// ErrScreen returns an overlaying (if activated) error-screen allowing
// to report errors without loosing the screen content.
func (s *Screen) ErrScreen() *ErrScr {
	if s.errScr == nil {
		s.errScr = &ErrScr{lib: s.lib}
	}
	return s.errScr
}

func (s *Screen) resize() (ok bool) {
	s.Clear()
	ok = !s.ToSmall()
	if ok {
		if s.errScr != nil && s.errScr.Active {
			s.errScr.Active = false
		}
		return ok
	}
	s.minErr()
	return ok
}

// ErrScreenFmt is the displayed error message for the case that a set
// minimal screen size is greater than the available screen size.
const ErrScreenFmt = "minimum screen-size: %dx%d"

func (s *Screen) minErr() {
	if !s.ErrScreen().Active {
		s.ErrScreen().Active = true
	}
	msg := fmt.Sprintf(ErrScreenFmt, s.minW, s.minH)
	if s.ErrScreen().String() != msg {
		s.ErrScreen().Set(msg)
	}
}

func (s *Screen) ensureSynced(show bool) {
	sync := func() {
		if show {
			s.lib.Show()
		} else {
			s.lib.Sync()
		}
	}
	if s.errScr != nil && s.errScr.Active {
		if s.errScr.IsDirty() || s.cleared {
			s.cleared = false
			s.errScr.sync()
			sync()
		}
		return
	}
	if !s.cleared && len(s.dirty) == 0 {
		return
	}
	if s.cleared {
		s.lib.Clear()
		s.cleared = false
	}
	for _, l := range s.dirty {
		l.sync()
	}
	s.dirty = nil
	sync()
}

// screenFactory is used to create new tcell-screens for production or
// for simulation.  export_test.go makes it possible to replace this
// screen factory with a screen-factory mocking up tcell's screen
// creation errors so they can be tested.
var screenFactory screenFactoryer = &defaultFactory{}

type defaultFactory struct{}

func (f *defaultFactory) NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

func (f *defaultFactory) NewSimulationScreen(
	s string,
) tcell.SimulationScreen {
	return tcell.NewSimulationScreen(s)
}

type screenFactoryer interface {
	NewScreen() (tcell.Screen, error)
	NewSimulationScreen(string) tcell.SimulationScreen
}
