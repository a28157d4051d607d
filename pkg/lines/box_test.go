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

type box struct{ Suite }

func (s *box) SetUp(t *T) { t.Parallel() }

func (s *box) Writes_lines_separated_by_line_breaks(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	ee.Update(func(e *lines.Env) {
		fmt.Fprint(e.Box(1, 0, 5, 2), "ab\ncd\nef")
	})
	t.Eq(" ab\n cd", tt.String())
}

func (s *box) Clips_content_to_its_width(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	ee.Update(func(e *lines.Env) {
		fmt.Fprint(e.Box(0, 0, 3, 1), "abcdef")
	})
	t.Eq("abc", tt.String())
}

func (s *box) Is_clipped_to_the_screen(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	var b *lines.Box
	ee.Update(func(e *lines.Env) {
		b = e.Box(8, 2, 5, 5)
		b.Fill('#')
	})
	t.Eq(2, b.Width)
	t.Eq(1, b.Len())
	t.Eq("\n\n        ##", tt.String())
}

func (s *box) Blanks_its_area(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 2)
	ee.Update(func(e *lines.Env) { e.Box(0, 0, 10, 2).Fill('x') })
	ee.Update(func(e *lines.Env) { e.Box(2, 0, 3, 2) })
	t.Eq("xx   xxxxx\nxx   xxxxx", tt.String())
}

func (s *box) Resets_lines_not_written_to(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	var b *lines.Box
	ee.Update(func(e *lines.Env) {
		b = e.Box(0, 0, 5, 3)
		fmt.Fprint(b, "1\n2\n3")
	})
	ee.Update(func(e *lines.Env) { fmt.Fprint(b, "4") })
	t.Eq("4", tt.String())
	t.Eq("4\n\n", b.String())
}

func (s *box) Ignores_lines_out_of_range(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	ee.Update(func(e *lines.Env) {
		b := e.Box(0, 0, 5, 1)
		b.Line(3).Set("nowhere")
		b.Line(0).Set("here")
	})
	t.Eq("here", tt.String())
}

func (s *box) Styles_its_lines(t *T) {
	ee, tt := lines.Test(t.GoT(), 10, 3)
	st := tcell.StyleDefault.Reverse(true)
	ee.Update(func(e *lines.Env) {
		e.Box(0, 0, 2, 1).Fill('|').SetStyle(st)
	})
	r, got := tt.Cell(1, 0)
	t.Eq('|', r)
	t.True(got == st)
}

func TestBox(t *testing.T) {
	t.Parallel()
	Run(&box{}, t)
}
