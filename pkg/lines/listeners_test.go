// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	. "github.com/slukits/flex/internal/gounit"
)

type listeners struct{ Suite }

func (s *listeners) SetUp(t *T) { t.Parallel() }

var zeroListener = func(*Env) {}

func runeEvt(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyEvt(k tcell.Key, m tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, m)
}

func (s *listeners) Have_initially_no_listeners(t *T) {
	ll := NewListeners(nil)
	t.True(ll.KBListener() == nil)
	_, ok := ll.Of(runeEvt('r'))
	t.Not.True(ok)
	_, ok = ll.Of(keyEvt(tcell.KeyEnter, 0))
	t.Not.True(ok)
}

func (s *listeners) Fail_to_bind_zero_rune_and_key(t *T) {
	ll := NewListeners(nil)
	t.ErrIs(ll.Rune(0, zeroListener), ErrZeroRune)
	t.ErrIs(ll.Key(tcell.KeyNUL, 0, zeroListener), ErrZeroKey)
}

func (s *listeners) Fail_to_bind_quitting_runes_and_keys(t *T) {
	ll := NewListeners(DefaultFeatures)
	err := ll.Rune(DefaultFeatures.RunesOf(FtQuit)[0], zeroListener)
	t.ErrIs(err, ErrQuit)
	t.Contains(err, "'q'")
	err = ll.Key(DefaultFeatures.KeysOf(FtQuit)[0].Key, 0, zeroListener)
	t.ErrIs(err, ErrQuit)
}

func (s *listeners) Fail_to_bind_twice(t *T) {
	ll := NewListeners(nil)
	t.FatalOn(ll.Rune('a', zeroListener))
	t.ErrIs(ll.Rune('a', zeroListener), ErrExists)
	t.FatalOn(ll.Key(tcell.KeyBS, 0, zeroListener))
	t.ErrIs(ll.Key(tcell.KeyBS, 0, zeroListener), ErrExists)
}

func (s *listeners) Provide_bound_listeners(t *T) {
	ll, kl := NewListeners(nil), func(*Env) {}
	t.FatalOn(ll.Rune('a', zeroListener))
	t.FatalOn(ll.Key(tcell.KeyBS, 0, kl))
	l, ok := ll.Of(runeEvt('a'))
	t.True(ok)
	t.Eq(fmt.Sprintf("%p", zeroListener), fmt.Sprintf("%p", l))
	l, ok = ll.Of(keyEvt(tcell.KeyBS, 0))
	t.True(ok)
	t.Eq(fmt.Sprintf("%p", kl), fmt.Sprintf("%p", l))
}

func (s *listeners) Unbind_given_nil_listener(t *T) {
	ll := NewListeners(nil)
	t.FatalOn(ll.Rune('a', zeroListener))
	t.FatalOn(ll.Rune('a', nil))
	_, ok := ll.Of(runeEvt('a'))
	t.Not.True(ok)
	t.FatalOn(ll.Rune('a', zeroListener))
}

func (s *listeners) Discriminate_keys_by_modifiers(t *T) {
	ll, shifted := NewListeners(nil), func(*Env) {}
	t.FatalOn(ll.Key(tcell.KeyBS, 0, zeroListener))
	t.FatalOn(ll.Key(tcell.KeyBS, tcell.ModShift, shifted))
	l, ok := ll.Of(keyEvt(tcell.KeyBS, tcell.ModShift))
	t.True(ok)
	t.Eq(fmt.Sprintf("%p", shifted), fmt.Sprintf("%p", l))
	t.FatalOn(ll.Key(tcell.KeyBS, 0, nil))
	_, ok = ll.Of(keyEvt(tcell.KeyBS, 0))
	t.Not.True(ok)
	_, ok = ll.Of(keyEvt(tcell.KeyBS, tcell.ModShift))
	t.True(ok)
}

func (s *listeners) Find_ctrl_keys_bound_without_modifier(t *T) {
	ll := NewListeners(nil)
	t.FatalOn(ll.Key(tcell.KeyCtrlA, 0, zeroListener))
	_, ok := ll.Of(keyEvt(tcell.KeyCtrlA, tcell.ModCtrl))
	t.True(ok)
}

func (s *listeners) Register_and_remove_keyboard_listener(t *T) {
	ll := NewListeners(nil)
	ll.Keyboard(func(*Env, rune, tcell.Key, tcell.ModMask) {})
	t.True(ll.KBListener() != nil)
	ll.Keyboard(nil)
	t.True(ll.KBListener() == nil)
}

func TestListeners(t *testing.T) {
	t.Parallel()
	Run(&listeners{}, t)
}
