// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import "github.com/gdamore/tcell/v2"

// MouseAction classifies a reported mouse event.
type MouseAction uint8

const (
	// Press is reported if the primary button went down.
	Press MouseAction = iota + 1

	// Drag is reported for moves with the primary button down.
	Drag

	// Release is reported if the primary button went up.
	Release
)

func (a MouseAction) String() string {
	switch a {
	case Press:
		return "press"
	case Drag:
		return "drag"
	case Release:
		return "release"
	}
	return "none"
}

// Mouse describes a reported mouse event.
type Mouse struct {
	X, Y   int
	Action MouseAction
}

// MouseListener is called back with reported mouse events.
type MouseListener = func(*Env, Mouse)

// pointer tracks the primary button's state between mouse events.
type pointer struct{ down bool }

// classify returns the action of given mouse event and false if it is
// not a press, drag or release of the primary button.
func (p *pointer) classify(ev *tcell.EventMouse) (MouseAction, bool) {
	down := ev.Buttons()&tcell.Button1 != 0
	defer func() { p.down = down }()
	switch {
	case down && !p.down:
		return Press, true
	case down && p.down:
		return Drag, true
	case !down && p.down:
		return Release, true
	}
	return 0, false
}
