// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Testing augments lines.Events instance created by *Test* with useful
// features for testing like firing an event or getting the current
// screen content as string.
// NOTE do not use an Events/Testing-instances concurrently.
// NOTE Events.Listen-method becomes non-blocking and starts event-loop
// polling in its own go-routine.
// NOTE all event triggering methods start event-listening if it is not
// already started.
// NOTE It is guaranteed that all methods of an Events/Testing-instances
// which trigger an event do not return before the event is processed
// and any screen manipulations are printed to the screen.
//
//	func TestTest(t *testing.T) {
//	    ee, tt := lines.Test(t)
//	    ee.Update(func(e *lines.Env) {
//	        fmt.Fprint(e.Box(0, 0, 2, 1), "42")
//	    })
//	    if tt.String() != "42" {
//	        t.Errorf("expected 42 on screen; got %s", tt.String())
//	    }
//	}
type Testing struct {
	ee  *Events
	lib tcell.SimulationScreen
	t   *testing.T

	// LastScreen provides the screen content right before quitting
	// listening.  NOTE it is guaranteed that that this snapshot is
	// taken *after* all lines-updates have made it to the screen.
	LastScreen string

	// Timeout defines how long an event-triggering method waits for the
	// event to be processed.  It defaults to 200ms.
	Timeout time.Duration
}

// Test creates a new Events-test-fixture with additional features for
// testing.  Given test's cleanup quits listening if it wasn't quit
// already.  The simulation screen has the size of given width and
// height which default to 80x25.
func Test(t *testing.T, size ...int) (*Events, *Testing) {
	t.Helper()
	ee, lib, err := Sim()
	if err != nil {
		t.Fatalf("test: init sim: %v", err)
	}
	if len(size) == 2 {
		lib.SetSize(size[0], size[1])
	}
	ee.t = &Testing{ee: ee, lib: lib, t: t,
		Timeout: 200 * time.Millisecond}
	t.Cleanup(func() {
		if ee.IsListening() {
			ee.QuitListening()
		}
	})
	return ee, ee.t
}

// waitForSynced waits on associated Events.Synced channel and fails
// the test with given message after the timeout.
func (fx *Testing) waitForSynced(msg string) {
	fx.t.Helper()
	tmr := time.NewTimer(fx.Timeout)
	defer tmr.Stop()
	select {
	case <-fx.ee.Synced:
	case <-tmr.C:
		fx.t.Fatal(msg)
	}
}

// FireResize posts a resize event and returns after this event
// has been processed.  Is associated Events instance not listening
// it is started before the event is fired.
func (fx *Testing) FireResize(width, height int) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.lib.SetSize(width, height)
	err := fx.lib.PostEvent(tcell.NewEventResize(width, height))
	if err != nil {
		fx.t.Fatal(err)
	}
	fx.waitForSynced("test: fire resize: sync timed out")
	return fx.ee
}

// FireRune posts given run-key-press event and returns after this
// event has been processed.
func (fx *Testing) FireRune(r rune) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.post(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	fx.waitForSynced("test: fire rune: sync timed out")
	return fx.ee
}

// FireKey posts given special-key event and returns after this
// event has been processed.
func (fx *Testing) FireKey(k tcell.Key, m ...tcell.ModMask) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	mod := tcell.ModNone
	if len(m) > 0 {
		mod = m[0]
	}
	fx.post(tcell.NewEventKey(k, 0, mod))
	fx.waitForSynced("test: fire key: sync timed out")
	return fx.ee
}

// FireMouse posts a mouse event at given position with given buttons
// pressed and returns after this event has been processed.
func (fx *Testing) FireMouse(
	x, y int, bb tcell.ButtonMask,
) *Events {
	fx.t.Helper()
	if !fx.ee.IsListening() {
		fx.listen()
	}
	fx.post(tcell.NewEventMouse(x, y, bb, tcell.ModNone))
	fx.waitForSynced("test: fire mouse: sync timed out")
	return fx.ee
}

// FireDrag presses the primary mouse button at given start position,
// drags the pointer to each of given positions and releases the
// button at the last of them.  Positions are given as x, y pairs.
func (fx *Testing) FireDrag(x, y int, to ...int) *Events {
	fx.t.Helper()
	fx.FireMouse(x, y, tcell.Button1)
	for i := 0; i+1 < len(to); i += 2 {
		x, y = to[i], to[i+1]
		fx.FireMouse(x, y, tcell.Button1)
	}
	return fx.FireMouse(x, y, tcell.ButtonNone)
}

func (fx *Testing) post(ev tcell.Event) {
	fx.t.Helper()
	if err := fx.lib.PostEvent(ev); err != nil {
		fx.t.Fatalf("test: post event: %v", err)
	}
}

// listen posts the initial resize event and starts listening for events
// in a new go-routine.  listen returns after the initial resize has
// completed.
func (fx *Testing) listen() *Events {
	fx.t.Helper()
	err := fx.lib.PostEvent(tcell.NewEventResize(fx.lib.Size()))
	if err != nil {
		fx.t.Fatalf("test: listen: post resize: %v", err)
	}
	go fx.ee.listen()
	fx.waitForSynced("test: listen: sync timed out")
	return fx.ee
}

func (fx *Testing) beforeFinalize() {
	fx.LastScreen = fx.String()
}

// Cell returns the rune and style at given screen position.
func (fx *Testing) Cell(x, y int) (rune, tcell.Style) {
	cc, w, h := fx.lib.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, tcell.StyleDefault
	}
	c := cc[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

// String returns the test-screen's content as string with line breaks
// where a new screen line starts.  Empty lines at the end of the screen
// are not returned and blanks at the end of a line are trimmed.
func (fx *Testing) String() string {
	cc, w, h := fx.lib.GetContents()
	ll := make([]string, h)
	for y := 0; y < h; y++ {
		sb := strings.Builder{}
		for x := 0; x < w; x++ {
			c := cc[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		ll[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.TrimRight(strings.Join(ll, "\n"), "\n")
}
