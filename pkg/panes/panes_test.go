// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package panes_test

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/flex"
	. "github.com/slukits/flex/internal/gounit"
	"github.com/slukits/flex/pkg/lines"
	"github.com/slukits/flex/pkg/panes"
)

type host struct{ Suite }

func (s *host) SetUp(t *T) { t.Parallel() }

// twoPanes hosts the panels "a" and "b" separated by a splitter on a
// screen of given size.
func twoPanes(
	t *T, o flex.Orientation, w, h int,
) (*panes.Host, *lines.Testing, *flex.Panel) {
	ee, tt := lines.Test(t.GoT(), w, h)
	p := flex.NewPanel("a")
	hst, err := panes.New(ee, panes.Options{},
		flex.Options{Orientation: o},
		p, flex.NewSplitter(false), flex.NewPanel("b"))
	t.FatalOn(err)
	ee.Listen()
	return hst, tt, p
}

func flexOf(p *flex.Panel) float64 {
	e, _ := p.Entry()
	return e.Flex
}

func (s *host) Fails_on_invalid_children(t *T) {
	ee, _ := lines.Test(t.GoT())
	_, err := panes.New(ee, panes.Options{}, flex.Options{},
		flex.NewSplitter(false))
	t.ErrIs(err, flex.ErrNoPanels)
}

func (s *host) Lays_out_panels_in_a_row(t *T) {
	_, tt, _ := twoPanes(t, flex.Horizontal, 21, 3)
	t.Eq("a         │b\n          │\n          │", tt.String())
}

func (s *host) Lays_out_panels_in_a_column(t *T) {
	_, tt, _ := twoPanes(t, flex.Vertical, 5, 5)
	t.Eq("a\n\n─────\nb", tt.String())
}

func (s *host) Draws_splitters_in_splitter_style(t *T) {
	_, tt, _ := twoPanes(t, flex.Horizontal, 21, 3)
	r, st := tt.Cell(10, 1)
	t.Eq('│', r)
	t.True(st == panes.DefaultOptions.SplitterStyle)
}

func (s *host) Moves_dragged_splitter(t *T) {
	_, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireDrag(10, 1, 14, 1)
	t.Eq("a             │b\n              │\n              │",
		tt.String())
	t.Near(0.7, flexOf(p))
}

func (s *host) Moves_dragged_splitter_of_a_column(t *T) {
	_, tt, p := twoPanes(t, flex.Vertical, 5, 5)
	tt.FireDrag(2, 2, 2, 3)
	t.Eq("a\n\n\n─────\nb", tt.String())
	t.Near(0.75, flexOf(p))
}

func (s *host) Ignores_drags_outside_splitters(t *T) {
	_, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireDrag(3, 1, 8, 1)
	r, _ := tt.Cell(10, 0)
	t.Eq('│', r)
	t.Near(0.5, flexOf(p))
}

func (s *host) Captures_the_pointer_while_dragging(t *T) {
	_, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireDrag(10, 1, 12, 2, 30, 5)
	r, _ := tt.Cell(19, 0)
	t.Eq('│', r)
	r, _ = tt.Cell(20, 0)
	t.Eq('b', r)
	t.Near(0.95, flexOf(p))
}

func (s *host) Highlights_dragged_splitter(t *T) {
	_, tt, _ := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireMouse(10, 1, tcell.Button1)
	_, st := tt.Cell(10, 0)
	t.True(st == panes.DefaultOptions.ActiveStyle)
	tt.FireMouse(10, 1, tcell.ButtonNone)
	_, st = tt.Cell(10, 0)
	t.True(st == panes.DefaultOptions.SplitterStyle)
}

func (s *host) Focuses_next_splitter_on_tab(t *T) {
	hst, tt, _ := twoPanes(t, flex.Horizontal, 21, 3)
	t.Eq(-1, hst.Focused())
	tt.FireKey(tcell.KeyTab)
	t.Eq(1, hst.Focused())
	_, st := tt.Cell(10, 0)
	t.True(st == panes.DefaultOptions.FocusStyle)
}

func (s *host) Moves_focused_splitter_with_arrow_keys(t *T) {
	_, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireKey(tcell.KeyTab)
	tt.FireKey(tcell.KeyRight)
	tt.FireKey(tcell.KeyRight)
	r, st := tt.Cell(12, 0)
	t.Eq('│', r)
	t.True(st == panes.DefaultOptions.FocusStyle)
	t.Near(0.6, flexOf(p))
	tt.FireKey(tcell.KeyLeft)
	r, _ = tt.Cell(11, 0)
	t.Eq('│', r)
	t.Near(0.55, flexOf(p))
}

func (s *host) Keeps_proportions_on_screen_resize(t *T) {
	_, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	tt.FireDrag(10, 1, 14, 1)
	tt.FireResize(41, 3)
	r, _ := tt.Cell(28, 0)
	t.Eq('│', r)
	t.Near(0.7, flexOf(p))
}

func (s *host) Restores_snapshot(t *T) {
	ee, tt := lines.Test(t.GoT(), 21, 3)
	_, err := panes.New(ee, panes.Options{},
		flex.Options{Snapshot: flex.State{{Flex: 0.25}, {}, {Flex: 0.75}}},
		flex.NewPanel("a"), flex.NewSplitter(false), flex.NewPanel("b"))
	t.FatalOn(err)
	ee.Listen()
	r, _ := tt.Cell(5, 0)
	t.Eq('│', r)
}

type drawer struct{}

func (d drawer) Draw(b *lines.Box) { fmt.Fprintf(b, "drawn:%d", b.Width) }

type stringer struct{}

func (s stringer) String() string { return "stringer" }

func (s *host) Draws_panel_contents(t *T) {
	ee, tt := lines.Test(t.GoT(), 21, 1)
	_, err := panes.New(ee, panes.Options{}, flex.Options{},
		flex.NewPanel(drawer{}), flex.NewSplitter(false),
		flex.NewPanel(stringer{}))
	t.FatalOn(err)
	ee.Listen()
	t.Eq("drawn:10  │stringer", tt.String())
}

func (s *host) Draws_into_its_area(t *T) {
	ee, tt := lines.Test(t.GoT(), 21, 3)
	_, err := panes.New(ee, panes.Options{
		Area: func(w, h int) panes.Rect {
			return panes.Rect{Width: w, Height: h - 1}
		},
		OnDraw: func(e *lines.Env, f flex.Frame) {
			_, h := e.Size()
			fmt.Fprintf(e.Box(0, h-1, 10, 1), "%.2f", f.Nodes[0].Flex)
		},
	}, flex.Options{},
		flex.NewPanel("a"), flex.NewSplitter(false), flex.NewPanel("b"))
	t.FatalOn(err)
	ee.Listen()
	t.Eq("a         │b\n          │\n0.50", tt.String())
	tt.FireDrag(10, 2, 14, 2)
	t.Eq("a         │b\n          │\n0.50", tt.String())
	tt.FireDrag(10, 1, 14, 1)
	t.Eq("a             │b\n              │\n0.70", tt.String())
}

func (s *host) Renders_drags_started_outside_the_event_loop(t *T) {
	hst, tt, p := twoPanes(t, flex.Horizontal, 21, 3)
	sp, err := hst.Container().Splitter(1)
	t.FatalOn(err)
	sp.Press(flex.Pointer{X: 10})
	sp.Move(flex.Pointer{X: 12})
	sp.Release(flex.Pointer{X: 12})
	r, _ := tt.Cell(12, 0)
	t.Eq('│', r)
	t.Near(0.6, flexOf(p))
}

func (s *host) Unmounts_container_on_close(t *T) {
	hst, _, _ := twoPanes(t, flex.Horizontal, 21, 3)
	t.True(hst.Container().Bootstrapped())
	hst.Close()
	t.Not.True(hst.Container().Bootstrapped())
	t.Eq(0, len(hst.Container().State()))
}

func TestHost(t *testing.T) {
	t.Parallel()
	Run(&host{}, t)
}
