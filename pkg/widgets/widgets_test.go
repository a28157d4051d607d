// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package widgets_test

import (
	"testing"

	. "github.com/slukits/flex/internal/gounit"
	"github.com/slukits/flex/pkg/lines"
	"github.com/slukits/flex/pkg/widgets"
)

type drawer interface{ Draw(*lines.Box) }

// draw draws given widget into a box of given size at the origin of a
// screen of that size and returns the screen's content.
func draw(t *T, d drawer, w, h int) (*lines.Testing, string) {
	ee, tt := lines.Test(t.GoT(), w, h)
	ee.Update(func(e *lines.Env) { d.Draw(e.Box(0, 0, w, h)) })
	return tt, tt.String()
}

type text struct{ Suite }

func (s *text) SetUp(t *T) { t.Parallel() }

func (s *text) Shows_title_above_its_body(t *T) {
	tt, got := draw(t, &widgets.Text{Title: "title",
		Body: "one\ntwo\nthree"}, 10, 3)
	t.Eq("title\none\ntwo", got)
	_, st := tt.Cell(0, 0)
	t.True(st == widgets.TitleStyle)
}

func (s *text) Shows_body_only_without_title(t *T) {
	_, got := draw(t, &widgets.Text{Body: "one\ntwo"}, 10, 3)
	t.Eq("one\ntwo", got)
}

func (s *text) Truncates_long_lines(t *T) {
	_, got := draw(t, &widgets.Text{Body: "abcdefghijkl"}, 5, 1)
	t.Eq("abcd"+widgets.Ellipsis, got)
}

func TestText(t *testing.T) {
	t.Parallel()
	Run(&text{}, t)
}

type progress struct{ Suite }

func (s *progress) SetUp(t *T) { t.Parallel() }

func (s *progress) Shows_labeled_bar_and_percentage(t *T) {
	_, got := draw(t, &widgets.Progress{Label: "dl", Value: 0.5}, 20, 1)
	t.Eq("dl [#####     ]  50%", got)
}

func (s *progress) Caps_values_above_one(t *T) {
	_, got := draw(t, &widgets.Progress{Label: "dl", Value: 1.5}, 20, 1)
	t.Eq("dl [##########] 100%", got)
}

func (s *progress) Treats_negative_values_as_zero(t *T) {
	_, got := draw(t, &widgets.Progress{Value: -1}, 11, 1)
	t.Eq("[    ]   0%", got)
}

func (s *progress) Shows_percentage_only_if_bar_does_not_fit(t *T) {
	_, got := draw(t, &widgets.Progress{Value: 0.5}, 4, 1)
	t.Eq(" 50%", got)
}

func TestProgress(t *testing.T) {
	t.Parallel()
	Run(&progress{}, t)
}

type table struct {
	Suite
	fx Fixtures
}

func (s *table) SetUp(t *T) {
	t.Parallel()
	s.fx.Set(t, widgets.NewTable("panel", "flex").
		Add("a", "0.50").Add("bb", "0.25"))
}

func (s *table) TearDown(t *T) { s.fx.Del(t) }

func (s *table) tbl(t *T) *widgets.Table {
	return s.fx.Get(t).(*widgets.Table)
}

func (s *table) Aligns_its_columns(t *T) {
	_, got := draw(t, s.tbl(t), 12, 4)
	t.Eq("panel flex\na     0.50\nbb    0.25", got)
}

func (s *table) Truncates_rows_to_box_width(t *T) {
	_, got := draw(t, s.tbl(t), 8, 2)
	t.Eq("panel f"+widgets.Ellipsis+"\na     0"+widgets.Ellipsis, got)
}

func (s *table) Provides_cells_by_row_and_field(t *T) {
	tbl := s.tbl(t)
	v, err := tbl.Cell(1, "flex")
	t.FatalOn(err)
	t.Eq("0.25", v)
	t.FatalOn(tbl.Set(1, "flex", "0.30"))
	v, _ = tbl.Cell(1, "flex")
	t.Eq("0.30", v)
}

func (s *table) Fails_on_unknown_field(t *T) {
	_, err := s.tbl(t).Cell(0, "size")
	t.ErrIs(err, widgets.ErrField)
	t.Contains(err, `"size"`)
	t.ErrIs(s.tbl(t).Set(0, "size", ""), widgets.ErrField)
}

func (s *table) Fails_on_row_out_of_range(t *T) {
	_, err := s.tbl(t).Cell(2, "flex")
	t.ErrIs(err, widgets.ErrRow)
}

func (s *table) Fills_missing_values_and_drops_surplus(t *T) {
	tbl := widgets.NewTable("a", "b").Add("1").Add("1", "2", "3")
	t.Eq(2, tbl.Len())
	v, _ := tbl.Cell(0, "b")
	t.Eq("", v)
	v, _ = tbl.Cell(1, "b")
	t.Eq("2", v)
}

func TestTable(t *testing.T) {
	t.Parallel()
	Run(&table{}, t)
}
