// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/ints"
	. "github.com/slukits/flex/internal/gounit"
	"github.com/slukits/flex/pkg/lines"
)

type features struct{ Suite }

func (s *features) SetUp(t *T) { t.Parallel() }

func (s *features) Registers_all_features_by_default(t *T) {
	exp := &ints.Set{}
	for _, f := range lines.AllFeatures {
		exp.Add(int(f))
	}
	t.Eq(exp.ToSlice(), lines.DefaultFeatures.Registered().ToSlice())
}

func (s *features) Default_features_are_not_modifiable(t *T) {
	lines.DefaultFeatures.Add(lines.FtNext, 'n', 0, 0)
	t.Not.True(lines.DefaultFeatures.HasRune('n'))
	lines.DefaultFeatures.Del(lines.FtNext)
	t.True(lines.DefaultFeatures.HasKey(tcell.KeyTab, tcell.ModNone))
}

func (s *features) Copies_are_modifiable(t *T) {
	ff := lines.DefaultFeatures.Copy()
	ff.Add(lines.FtNext, 'n', tcell.KeyF2, tcell.ModNone)
	t.Eq(lines.FtNext, ff.RuneEvent('n'))
	t.Eq(lines.FtNext, ff.KeyEvent(tcell.KeyF2, tcell.ModNone))
	ff.Del(lines.FtNext)
	t.Not.True(ff.HasRune('n'))
	t.Not.True(ff.HasKey(tcell.KeyTab, tcell.ModNone))
}

func (s *features) Keep_quit_keys_on_deletion(t *T) {
	ff := lines.DefaultFeatures.Copy()
	ff.Del(lines.FtQuit)
	t.Not.True(ff.RuneQuits('q'))
	t.True(ff.KeyQuits(tcell.KeyCtrlC))
}

func (s *features) Prevent_registering_quit_runes(t *T) {
	ee, _ := lines.Test(t.GoT())
	t.ErrIs(ee.Rune('q', func(*lines.Env) {}), lines.ErrQuit)
	t.ErrIs(ee.Key(tcell.KeyCtrlD, tcell.ModNone,
		func(*lines.Env) {}), lines.ErrQuit)
	t.ErrIs(ee.Rune(0, func(*lines.Env) {}), lines.ErrZeroRune)
	t.FatalOn(ee.Rune('a', func(*lines.Env) {}))
	t.ErrIs(ee.Rune('a', func(*lines.Env) {}), lines.ErrExists)
}

func (s *features) Move_arrow_keys_to_key_listeners_once_deleted(t *T) {
	ee, tt := lines.Test(t.GoT())
	ee.Features.Del(lines.FtForward)
	got := 0
	t.FatalOn(ee.Key(tcell.KeyRight, tcell.ModNone,
		func(*lines.Env) { got++ }))
	tt.FireKey(tcell.KeyRight)
	t.Eq(1, got)
}

func TestFeatures(t *testing.T) {
	t.Parallel()
	Run(&features{}, t)
}
