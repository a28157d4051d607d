// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines_test

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	. "github.com/slukits/flex/internal/gounit"
	"github.com/slukits/flex/pkg/lines"
)

type display struct{ Suite }

func (s *display) SetUp(t *T) { t.Parallel() }

func (s *display) Reports_its_size(t *T) {
	ee, _ := lines.Test(t.GoT(), 10, 3)
	w, h := 0, 0
	ee.Update(func(e *lines.Env) { w, h = e.Size() })
	t.Eq(10, w)
	t.Eq(3, h)
}

func (s *display) Syncs_dirty_lines_after_an_event(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	var l *lines.Line
	ee.Update(func(e *lines.Env) {
		l = e.Box(0, 1, 5, 1).Line(0).Set("abc")
		t.True(l.IsDirty())
	})
	t.Not.True(l.IsDirty())
	t.Eq("\nabc", tt.String())
	ee.Update(func(e *lines.Env) { l.Set("ab") })
	t.Eq("\nab", tt.String())
}

func (s *display) Writes_lines_with_their_style(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 1)
	st := tcell.StyleDefault.Bold(true)
	ee.Update(func(e *lines.Env) {
		e.Box(0, 0, 3, 1).Line(0).Set("a").SetStyle(st)
	})
	_, got := tt.Cell(2, 0)
	t.True(got == st)
	_, got = tt.Cell(3, 0)
	t.True(got == tcell.StyleDefault)
}

func (s *display) Is_blanked_by_clear(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 2)
	ee.Update(func(e *lines.Env) { fmt.Fprint(e.Box(0, 0, 5, 2), "a\nb") })
	ee.Update(func(e *lines.Env) {
		fmt.Fprint(e.Box(5, 0, 5, 1), "c")
		e.Clear()
	})
	t.Eq("", tt.String())
}

func (s *display) Overlays_active_error_screen(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	ee.Update(func(e *lines.Env) { fmt.Fprint(e.Box(0, 0, 10, 1), "content") })
	ee.Update(func(e *lines.Env) {
		e.ErrScreen().Set("err")
		e.ErrScreen().Active = true
	})
	t.Eq("\n   err", tt.String())
	ee.Update(func(e *lines.Env) {
		fmt.Fprint(e.Box(0, 0, 10, 1), "ignored")
	})
	t.Eq("\n   err", tt.String())
}

func (s *display) Truncates_error_message_to_screen_width(t *T) {
	ee, tt := lines.Test(t.GoT(), 4, 1)
	ee.Update(func(e *lines.Env) {
		e.ErrScreen().Set("overflow")
		e.ErrScreen().Active = true
	})
	t.Eq("over", tt.String())
}

func (s *display) Provides_no_cell_outside_the_screen(t *T) {
	_, tt := lines.Test(t.GoT(), 4, 1)
	r, st := tt.Cell(4, 0)
	t.Eq(rune(0), r)
	t.True(st == tcell.StyleDefault)
}

func TestScreen(t *testing.T) {
	t.Parallel()
	Run(&display{}, t)
}
