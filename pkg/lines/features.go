// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/ints"
)

// Feature classifies keys/runes for "internal" event handling.
type Feature uint64

const (
	// NoFeature classifies keys/runes not registered for any "internal"
	// event.
	NoFeature Feature = iota

	// FtQuit classifies keys/runes registered for the quit event.
	FtQuit

	// FtNext classifies keys/runes registered for moving the focus to
	// the next focusable item.
	FtNext

	// FtForward classifies keys/runes registered for moving a focused
	// item toward the end of its axis.
	FtForward

	// FtBackward classifies keys/runes registered for moving a focused
	// item toward the start of its axis.
	FtBackward
)

func (f Feature) String() string {
	switch f {
	case FtQuit:
		return "quit"
	case FtNext:
		return "next"
	case FtForward:
		return "forward"
	case FtBackward:
		return "backward"
	}
	return "none"
}

// AllFeatures provides a slice of all the potentially internally
// handled features.
var AllFeatures = []Feature{FtQuit, FtNext, FtForward, FtBackward}

// FeatureListener is called back with the feature of a reported key
// or rune event.
type FeatureListener = func(*Env, Feature)

// Features provides information about keys/runes which are registered
// for features provided by the lines-package.  It also allows to change
// these in a consistent and convenient way.  The zero value is not
// ready to use.  Make a copy of DefaultFeatures to create a new
// Features-instance.
type Features struct {
	mutex *sync.Mutex
	keys  map[tcell.ModMask]map[tcell.Key]Feature
	runes map[rune]Feature
}

// DefaultFeatures are the default runes and keys which are associated
// with internally handled events.  NOTE DefaultFeatures cannot be
// modified, a copy of them can!
var DefaultFeatures = &Features{
	mutex: &sync.Mutex{},
	keys: map[tcell.ModMask]map[tcell.Key]Feature{
		tcell.ModNone: {
			tcell.KeyCtrlC: FtQuit,
			tcell.KeyCtrlD: FtQuit,
			tcell.KeyTab:   FtNext,
			tcell.KeyRight: FtForward,
			tcell.KeyDown:  FtForward,
			tcell.KeyLeft:  FtBackward,
			tcell.KeyUp:    FtBackward,
		},
	},
	runes: map[rune]Feature{
		0:   NoFeature,
		'q': FtQuit,
	},
}

// modifiable returns false for the default features.
func (ff *Features) modifiable() bool {
	_, ok := ff.runes[0]
	return !ok
}

// Copy creates a new Features instance initialized with the features of
// receiving Features instance.
func (ff *Features) Copy() *Features {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	cpy := Features{
		mutex: &sync.Mutex{},
		keys:  make(map[tcell.ModMask]map[tcell.Key]Feature),
		runes: map[rune]Feature{},
	}
	for m, kk := range ff.keys {
		cpy.keys[m] = map[tcell.Key]Feature{}
		for k, f := range kk {
			cpy.keys[m][k] = f
		}
	}
	for r, f := range ff.runes {
		if r == 0 {
			continue
		}
		cpy.runes[r] = f
	}
	return &cpy
}

// Add associates given feature with given rune, key and modifier.
// Provide the respective zero-values for arguments you don't want to
// provide.  ModMasks are only associated with keys.
func (ff *Features) Add(f Feature, r rune, k tcell.Key, m tcell.ModMask) {
	if !ff.modifiable() || f == NoFeature {
		return
	}
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	if r != 0 {
		ff.runes[r] = f
	}
	if k == tcell.KeyNUL {
		return
	}
	if ff.keys[m] == nil {
		ff.keys[m] = map[tcell.Key]Feature{}
	}
	ff.keys[m][k] = f
}

// Del removes all keys and runes registered for given feature except
// for the quit feature.  In the later case only registered runes are
// removed.  ctrl-c and ctrl-d are always registered for the quit key.
func (ff *Features) Del(f Feature) {
	if !ff.modifiable() {
		return
	}
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	for r, _f := range ff.runes {
		if f == _f {
			delete(ff.runes, r)
		}
	}
	if f == FtQuit {
		return
	}
	for _, kk := range ff.keys {
		for k, _f := range kk {
			if f == _f {
				delete(kk, k)
			}
		}
	}
}

// Registered returns the set of features currently registered.
func (ff *Features) Registered() *ints.Set {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	_ff := &ints.Set{}
	for _, kk := range ff.keys {
		for _, f := range kk {
			_ff.Add(int(f))
		}
	}
	for _, f := range ff.runes {
		if f == NoFeature {
			continue
		}
		_ff.Add(int(f))
	}
	return _ff
}

type FeatureKey struct {
	Mod tcell.ModMask
	Key tcell.Key
}

// KeysOf returns the keys with their modifiers for given feature.
func (ff *Features) KeysOf(f Feature) []*FeatureKey {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	kk := []*FeatureKey{}
	for m, _kk := range ff.keys {
		for k, _f := range _kk {
			if f != _f {
				continue
			}
			kk = append(kk, &FeatureKey{Mod: m, Key: k})
		}
	}
	return kk
}

// RunesOf returns the runes for given lines-feature.
func (ff *Features) RunesOf(f Feature) []rune {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	rr := []rune{}
	for r, _f := range ff.runes {
		if f != _f || r == 0 {
			continue
		}
		rr = append(rr, r)
	}
	return rr
}

// HasKey returns true if given key is registered for a feature.
func (ff *Features) HasKey(k tcell.Key, m tcell.ModMask) bool {
	return ff.KeyEvent(k, m) != NoFeature
}

// HasRune returns true if given rune is registered for internal event
// handling.
func (ff *Features) HasRune(r rune) bool {
	return ff.RuneEvent(r) != NoFeature
}

// KeyEvent maps a key to its internally handled event or to NoFeature
// if not registered.
func (ff *Features) KeyEvent(k tcell.Key, m tcell.ModMask) Feature {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.keys[m][k]
}

// RuneEvent maps a rune to its internally handled event or to
// NoFeature if not registered.
func (ff *Features) RuneEvent(r rune) Feature {
	ff.mutex.Lock()
	defer ff.mutex.Unlock()
	return ff.runes[r]
}

// RuneQuits returns true iff given rune is bound to the quit feature.
func (ff *Features) RuneQuits(r rune) bool {
	return ff.RuneEvent(r) == FtQuit
}

// KeyQuits returns true iff given key without modifiers is bound to
// the quit feature.
func (ff *Features) KeyQuits(k tcell.Key) bool {
	return ff.KeyEvent(k, tcell.ModNone) == FtQuit
}
