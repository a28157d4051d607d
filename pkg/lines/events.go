// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Events allows to listen for user-input event which are then reported
// to registered listeners.  It also manages behind the scenes the
// screen synchronization.
type Events struct {
	scr         *Screen
	mutex       *sync.Mutex
	ll          *Listeners
	resize      Listener
	quit        Listener
	mouse       MouseListener
	feature     FeatureListener
	pointer     pointer
	isListening bool
	reporting   bool
	t           *Testing

	// Synced sends a message after a the screen synchronization
	// following a reported event.
	Synced chan bool

	// Features are the keys and runes which are used for "internal"
	// event handling, e.g. the keys/runes for the quit event are q,
	// ctrl-c and ctrl-d.  Features default to a copy of
	// *DefaultFeatures*.
	Features *Features
}

// IsListening returns true if given Events polling from the event loop.
func (ee *Events) IsListening() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.isListening
}

// Listen blocks and starts polling from the event loop reporting
// received events to registered listeners.  Listen returns if either a
// quit-event was received ('q', ctrl-c, ctrl-d input) or QuitListening
// was called.  NOTE in testing Listen is non-blocking, i.e. returns
// after the initial resize was processed.
func (ee *Events) Listen() {
	if ee.t != nil {
		ee.t.listen()
		return
	}
	ee.listen()
}

func (ee *Events) listen() {
	if !ee.startPolling() { // ignore subsequent calls of Listen
		return
	}
	for {
		ev := ee.scr.lib.PollEvent()

		select {
		case <-ee.Synced:
		default:
		}

		switch ev := ev.(type) {
		case nil: // event-loop ended
			return
		case *quitEvent:
			ee.stopPolling()
			ee.reportQuit(ev)
			ee.quitListening()
			return
		case *tcell.EventResize:
			if ee.scr.resize() {
				ee.report(ev)
			}
			ee.scr.ensureSynced(false)
			ee.Synced <- true
		default:
			if quit := ee.report(ev); quit {
				ee.stopPolling()
				ee.quitListening()
				return
			}
			ee.scr.ensureSynced(true)
			ee.Synced <- true
		}
	}
}

func (ee *Events) startPolling() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	if ee.isListening {
		return false
	}
	ee.isListening = true
	return true
}

func (ee *Events) stopPolling() {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.isListening = false
}

// Resize registers given listener for the resize event.  Note starting
// the event-loop by calling *Listen* will trigger a mandatory initial
// resize event.
func (ee *Events) Resize(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.resize = l
}

// Quit registers given listener for the quit event which is triggered
// by the keys and runes of the FtQuit feature or by QuitListening.
func (ee *Events) Quit(l Listener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.quit = l
}

// Mouse registers given listener for presses, drags and releases of
// the primary mouse button.
func (ee *Events) Mouse(l MouseListener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.mouse = l
}

// Feature registers given listener for the keys and runes bound to
// features other than quitting.
func (ee *Events) Feature(l FeatureListener) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.feature = l
}

// Update posts a new event into the event loop which calls once it is
// its turn given listener.  Update fails if the event-loop is full
// returned error will wrap tcell's *PostEvent* error.  Update is an
// no-op if listener is nil.  NOTE in testing Update returns after the
// event was processed unless it is called from a listener.
func (ee *Events) Update(l Listener) error {
	if l == nil {
		return nil
	}
	if ee.t != nil && !ee.IsListening() {
		ee.t.listen()
	}
	evt := &updateEvent{when: time.Now(), listener: l}
	if err := ee.scr.lib.PostEvent(evt); err != nil {
		return fmt.Errorf(ErrUpdateFmt, err)
	}
	if ee.t != nil && !ee.isReporting() {
		ee.t.waitForSynced("test: update: sync timed out")
	}
	return nil
}

// ErrUpdateFmt is the error message for a failing update-event post.
var ErrUpdateFmt = "can't post event: %w"

type updateEvent struct {
	when     time.Time
	listener Listener
}

func (u *updateEvent) When() time.Time { return u.when }

// Rune registers a given listener for given rune-event.  It fails if
// already a listener is registered for given rune-event.
func (ee *Events) Rune(r rune, l Listener) error {
	return ee.ll.Rune(r, l)
}

// Keyboard listener shadows all other rune/key listeners until it is
// removed by Keyboard(nil).
func (ee *Events) Keyboard(l KBListener) {
	ee.ll.Keyboard(l)
}

// Key registers given listener for given key/mode-event.  It fails if
// already a listener is registered for given key/mode combination.
func (ee *Events) Key(k tcell.Key, m tcell.ModMask, l Listener) error {
	return ee.ll.Key(k, m, l)
}

// QuitListening posts a quit event ending the event-loop, i.e.
// IsListening will be false.
func (ee *Events) QuitListening() {
	if ee.IsListening() {
		ee.scr.lib.PostEvent(&quitEvent{when: time.Now()})
		if ee.t != nil && !ee.isReporting() {
			ee.t.waitForSynced("test: quit listening: sync timed out")
		}
		return
	}
	ee.quitListening()
}

func (ee *Events) quitListening() {
	if ee.t != nil {
		ee.t.beforeFinalize()
	}
	ee.scr.lib.Fini()
	close(ee.Synced)
}

type quitEvent struct {
	when time.Time
}

func (u *quitEvent) When() time.Time { return u.when }

func (ee *Events) isReporting() bool {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.reporting
}

func (ee *Events) setReporting(r bool) {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	ee.reporting = r
}

// call calls back given listener with an environment for given event
// which is invalidated after the listener returned.
func (ee *Events) call(ev tcell.Event, l Listener) {
	env := &Env{scr: ee.scr, EE: ee, Evn: ev}
	ee.setReporting(true)
	defer ee.setReporting(false)
	l(env)
	env.reset()
}

func (ee *Events) report(ev tcell.Event) (quit bool) {
	if ee.scr.ToSmall() {
		return ee.reportToSmall(ev)
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if l := ee.listener(&ee.resize); l != nil {
			ee.call(ev, l)
		}
	case *tcell.EventKey:
		return ee.reportKeyEvent(ev)
	case *tcell.EventMouse:
		ee.reportMouseEvent(ev)
	case *updateEvent:
		ee.call(ev, ev.listener)
	}
	return false
}

// reportToSmall handles reporting an event in case the screen is to
// small, i.e. only reports the quit-event.
func (ee *Events) reportToSmall(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		if ee.featureOf(ev) == FtQuit {
			ee.reportQuit(ev)
			return true
		}
	}
	return false
}

func (ee *Events) reportQuit(ev tcell.Event) {
	if l := ee.listener(&ee.quit); l != nil {
		ee.call(ev, l)
	}
}

// featureOf maps given key event to its feature.
func (ee *Events) featureOf(ev *tcell.EventKey) Feature {
	if ev.Key() == tcell.KeyRune {
		return ee.Features.RuneEvent(ev.Rune())
	}
	f := ee.Features.KeyEvent(ev.Key(), ev.Modifiers())
	if f == NoFeature && ev.Modifiers()&tcell.ModCtrl != 0 {
		return ee.Features.KeyEvent(ev.Key(), ev.Modifiers()&^tcell.ModCtrl)
	}
	return f
}

func (ee *Events) reportKeyEvent(ev *tcell.EventKey) bool {
	switch ft := ee.featureOf(ev); ft {
	case FtQuit:
		ee.reportQuit(ev)
		return true
	case NoFeature:
	default:
		if l := ee.featureListener(); l != nil {
			ee.call(ev, func(e *Env) { l(e, ft) })
			return false
		}
	}
	if kbl := ee.ll.KBListener(); kbl != nil {
		ee.call(ev, func(e *Env) {
			kbl(e, ev.Rune(), ev.Key(), ev.Modifiers())
		})
		return false
	}
	if l, ok := ee.ll.Of(ev); ok {
		ee.call(ev, l)
	}
	return false
}

func (ee *Events) reportMouseEvent(ev *tcell.EventMouse) {
	action, ok := ee.pointer.classify(ev)
	if !ok {
		return
	}
	ee.mutex.Lock()
	l := ee.mouse
	ee.mutex.Unlock()
	if l == nil {
		return
	}
	x, y := ev.Position()
	ee.call(ev, func(e *Env) { l(e, Mouse{X: x, Y: y, Action: action}) })
}

func (ee *Events) listener(l *Listener) Listener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return *l
}

func (ee *Events) featureListener() FeatureListener {
	ee.mutex.Lock()
	defer ee.mutex.Unlock()
	return ee.feature
}
