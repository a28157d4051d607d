// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lines runs a terminal event loop on top of
// https://github.com/gdamore/tcell reporting resize, keyboard, mouse
// and update events to registered listeners and synchronizing the
// screen after each reported event.
//
//	ee, err := lines.New()
//	if err != nil {
//	    log.Fatalf("can't acquire events: %v", err)
//	}
//	ee.Resize(func(e *lines.Env) {
//	    w, h := e.Size()
//	    fmt.Fprintf(e.Box(0, 0, w, h), "%d x %d", w, h)
//	})
//	ee.Listen()
//
// Listen blocks until 'q', ctrl-c or ctrl-d is pressed or
// ee.QuitListening() is called.
//
// Listeners write to the screen through [Box]es of [Line]s.  Changed
// lines are queued and flushed to the screen once the listener
// returned, i.e. there is exactly one screen update per event.
//
// An environment passed to a listener must not be used after the
// listener returned.  Other go routines obtain an environment by
// posting an update:
//
//	go func(ee *lines.Events) {
//	    result := veryHeavyOperation()
//	    ee.Update(func(e *lines.Env) {
//	        fmt.Fprint(e.Box(0, 0, 20, 1), result)
//	    })
//	}(e.EE)
//
// Mouse events are reported as press, drag and release of the primary
// button; see [Events.Mouse].  Keys and runes which are bound to
// features like quitting or moving a focus are reported to the
// feature listener; see [Events.Feature] and [Features].
package lines

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrScreen is returned by New if tcell fails to create a screen.
var ErrScreen = errors.New("lines: can't create screen")

// ErrInit is returned by New and Sim if tcell fails to initialize its
// screen.
var ErrInit = errors.New("lines: can't initialize screen")

// New creates an Events instance for the terminal.
func New() (*Events, error) {
	lib, err := screenFactory.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreen, err)
	}
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	lib.EnableMouse()
	return newEvents(lib), nil
}

// Sim creates an Events instance for a tcell simulation screen which
// is returned as well.
func Sim() (*Events, tcell.SimulationScreen, error) {
	lib := screenFactory.NewSimulationScreen("")
	if err := lib.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	lib.EnableMouse()
	return newEvents(lib), lib, nil
}

func newEvents(lib tcell.Screen) *Events {
	ff := DefaultFeatures.Copy()
	return &Events{
		scr:      &Screen{lib: lib},
		mutex:    &sync.Mutex{},
		ll:       NewListeners(ff),
		Synced:   make(chan bool, 1),
		Features: ff,
	}
}
