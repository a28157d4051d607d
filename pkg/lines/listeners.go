// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Listener is the most common type of listener: a callback provided
// with an environment.
type Listener = func(*Env)

// KBListener receives every key event which is not bound to a feature
// together with its rune, key and modifiers.
type KBListener = func(*Env, rune, tcell.Key, tcell.ModMask)

// IsQuitter tells which runes and keys are reserved for quitting.
type IsQuitter interface {
	RuneQuits(rune) bool
	KeyQuits(tcell.Key) bool
}

// ErrEvents is wrapped by all listener registration errors.
var ErrEvents = errors.New("add event")

// ErrZeroRune for attempting to register for the zero-rune.
var ErrZeroRune = fmt.Errorf("%w: can't register zero-rune", ErrEvents)

// ErrZeroKey for attempting to register for the zero-key.
var ErrZeroKey = fmt.Errorf("%w: can't register zero-key", ErrEvents)

// ErrQuit for attempting to register for a key or rune of the
// quit-feature.
var ErrQuit = fmt.Errorf("%w: associated with quit event", ErrEvents)

// ErrExists for attempting to register for a key or rune twice.
var ErrExists = fmt.Errorf("%w: already registered", ErrEvents)

// binding identifies a rune or a key/modifiers combination; runes are
// bound without modifiers.
type binding struct {
	key tcell.Key
	mod tcell.ModMask
	r   rune
}

func (b binding) String() string {
	if b.key == tcell.KeyRune {
		return fmt.Sprintf("%q", b.r)
	}
	return tcell.NewEventKey(b.key, 0, b.mod).Name()
}

// Listeners is a concurrency save registry of rune and key listeners.
type Listeners struct {
	mutex sync.Mutex
	quits IsQuitter
	bb    map[binding]Listener
	kb    KBListener
}

// NewListeners creates a listener registry refusing registrations for
// the runes and keys given is-quitter reserves; DefaultFeatures is
// used if it is nil.
func NewListeners(q IsQuitter) *Listeners {
	if q == nil {
		q = DefaultFeatures
	}
	return &Listeners{quits: q, bb: map[binding]Listener{}}
}

// Rune registers given listener for given rune or removes the rune's
// registration if the listener is nil.
func (ll *Listeners) Rune(r rune, l Listener) error {
	if r == 0 && l != nil {
		return ErrZeroRune
	}
	return ll.bind(binding{key: tcell.KeyRune, r: r}, l,
		ll.quits.RuneQuits(r))
}

// Key registers given listener for given key and modifiers or removes
// their registration if the listener is nil.
func (ll *Listeners) Key(k tcell.Key, m tcell.ModMask, l Listener) error {
	if k == tcell.KeyNUL && l != nil {
		return ErrZeroKey
	}
	return ll.bind(binding{key: k, mod: m}, l, ll.quits.KeyQuits(k))
}

func (ll *Listeners) bind(b binding, l Listener, quits bool) error {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	if l == nil {
		delete(ll.bb, b)
		return nil
	}
	if quits {
		return fmt.Errorf("%w: %s", ErrQuit, b)
	}
	if _, ok := ll.bb[b]; ok {
		return fmt.Errorf("%w: %s", ErrExists, b)
	}
	ll.bb[b] = l
	return nil
}

// Keyboard registers a listener shadowing all rune and key listeners
// until it is removed by Keyboard(nil).
func (ll *Listeners) Keyboard(l KBListener) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	ll.kb = l
}

// KBListener returns the registered keyboard listener or nil.
func (ll *Listeners) KBListener() KBListener {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	return ll.kb
}

// Of returns the listener bound to given key event's rune or to its
// key and modifiers.  Control keys are also found if they were bound
// without the ctrl-modifier.
func (ll *Listeners) Of(ev *tcell.EventKey) (Listener, bool) {
	if ev.Key() == tcell.KeyRune {
		return ll.lookup(binding{key: tcell.KeyRune, r: ev.Rune()})
	}
	l, ok := ll.lookup(binding{key: ev.Key(), mod: ev.Modifiers()})
	if !ok && ev.Modifiers()&tcell.ModCtrl != 0 {
		return ll.lookup(binding{key: ev.Key(),
			mod: ev.Modifiers() &^ tcell.ModCtrl})
	}
	return l, ok
}

func (ll *Listeners) lookup(b binding) (Listener, bool) {
	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	l, ok := ll.bb[b]
	return l, ok
}
