// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package panes hosts a flex container in a lines event loop.  A [Host]
measures the screen area of its container, draws the container's
frames into it and translates mouse and keyboard input into splitter
drags:

	ee, _ := lines.New()
	h, err := panes.New(ee, panes.Options{}, flex.Options{},
		flex.NewPanel("left"),
		flex.NewSplitter(false),
		flex.NewPanel("right"),
	)
	ee.Listen()

A pressed primary mouse button over a splitter captures the pointer
for that splitter until the button is released.  Tab moves the focus
to the next splitter, the arrow keys move the focused splitter by one
cell.

Panel contents implementing [Drawer] draw themselves; strings and
Stringer are printed into the panel's area.
*/
package panes

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/flex"
	"github.com/slukits/flex/pkg/lines"
	"golang.org/x/exp/slices"
)

// Drawer is implemented by panel contents drawing themselves into the
// box of their panel.
type Drawer interface {
	Draw(*lines.Box)
}

// Rect is a screen area.
type Rect struct{ X, Y, Width, Height int }

// Options configure a host.
type Options struct {

	// Area returns the container's area for given screen size; it
	// defaults to the whole screen.
	Area func(width, height int) Rect

	// OnDraw is called after the host drew to the screen.
	OnDraw func(*lines.Env, flex.Frame)

	SplitterStyle tcell.Style
	ActiveStyle   tcell.Style
	FocusStyle    tcell.Style
}

// DefaultOptions provide the default styles of splitters.
var DefaultOptions = Options{
	SplitterStyle: tcell.StyleDefault.Dim(true),
	ActiveStyle:   tcell.StyleDefault.Reverse(true),
	FocusStyle:    tcell.StyleDefault.Bold(true),
}

// Host implements the scheduler and resize observer of a flex
// container on top of lines events.
type Host struct {
	ee        *lines.Events
	c         *flex.Container
	opt       Options
	env       *lines.Env
	area      Rect
	observers map[int]func()
	nextID    int
	pending   []flex.Node
	batching  int
	capture   *flex.Splitter
	focus     int
}

// New creates a host for a container of given children which is
// created with given options whereas its scheduler, observer and
// measure function are set by the host.  The host registers resize,
// mouse and feature listeners at given events.
func New(
	ee *lines.Events, o Options, fo flex.Options, cc ...flex.Child,
) (*Host, error) {
	if o.Area == nil {
		o.Area = func(w, h int) Rect { return Rect{Width: w, Height: h} }
	}
	if o.SplitterStyle == (tcell.Style{}) {
		o.SplitterStyle = DefaultOptions.SplitterStyle
	}
	if o.ActiveStyle == (tcell.Style{}) {
		o.ActiveStyle = DefaultOptions.ActiveStyle
	}
	if o.FocusStyle == (tcell.Style{}) {
		o.FocusStyle = DefaultOptions.FocusStyle
	}
	h := &Host{ee: ee, opt: o, observers: map[int]func(){}, focus: -1}
	fo.Scheduler, fo.Observer, fo.Measure = h, h, h.measure
	c, err := flex.New(fo, cc...)
	if err != nil {
		return nil, err
	}
	h.c = c
	ee.Resize(h.resize)
	ee.Mouse(h.mouse)
	ee.Feature(h.feature)
	c.Mount()
	return h, nil
}

// Container returns the hosted container.
func (h *Host) Container() *flex.Container { return h.c }

// Area returns the container's screen area.
func (h *Host) Area() Rect { return h.area }

// Focused returns the index of the focused splitter or -1.
func (h *Host) Focused() int {
	ss := h.c.Splitters()
	if h.focus < 0 || h.focus >= len(ss) {
		return -1
	}
	return ss[h.focus]
}

// Close unmounts the hosted container.
func (h *Host) Close() { h.c.Unmount() }

// Observe implements flex.ResizeObserver.
func (h *Host) Observe(notify func()) (disconnect func()) {
	id := h.nextID
	h.nextID++
	h.observers[id] = notify
	return func() { delete(h.observers, id) }
}

// Batch implements flex.Scheduler.
func (h *Host) Batch(f func()) {
	h.batching++
	f()
	h.batching--
	if h.batching == 0 {
		h.flush()
	}
}

// Render implements flex.Scheduler.
func (h *Host) Render(n flex.Node) {
	h.pending = append(h.pending, n)
	if h.batching == 0 {
		h.flush()
	}
}

func (h *Host) measure() int {
	if h.c.Orientation() == flex.Vertical {
		return h.area.Height
	}
	return h.area.Width
}

// with makes given environment available to the scheduler while given
// function runs.
func (h *Host) with(e *lines.Env, f func()) {
	h.env = e
	defer func() { h.env = nil }()
	f()
}

func (h *Host) resize(e *lines.Env) {
	h.with(e, func() {
		h.area = h.opt.Area(e.Size())
		bootstrapped := h.c.Bootstrapped()
		for _, notify := range h.observers {
			notify()
		}
		if bootstrapped {
			h.drawAll()
		}
	})
}

func (h *Host) flush() {
	if len(h.pending) == 0 {
		return
	}
	if h.env == nil {
		h.pending = nil
		h.ee.Update(func(e *lines.Env) { h.with(e, h.drawAll) })
		return
	}
	for _, n := range h.pending {
		h.draw(n)
	}
	h.pending = nil
	h.drawn()
}

func (h *Host) drawAll() {
	h.pending = nil
	if !h.c.Bootstrapped() {
		return
	}
	for _, n := range h.c.Frame().Nodes {
		h.draw(n)
	}
	h.drawn()
}

func (h *Host) drawn() {
	if h.opt.OnDraw != nil {
		h.opt.OnDraw(h.env, h.c.Frame())
	}
}

// rect returns the screen area of given node.
func (h *Host) rect(n flex.Node) Rect {
	if h.c.Orientation() == flex.Vertical {
		return Rect{X: h.area.X, Y: h.area.Y + n.Offset,
			Width: h.area.Width, Height: n.Size}
	}
	return Rect{X: h.area.X + n.Offset, Y: h.area.Y,
		Width: n.Size, Height: h.area.Height}
}

func (h *Host) draw(n flex.Node) {
	r := h.rect(n)
	b := h.env.Box(r.X, r.Y, r.Width, r.Height)
	if n.Kind == flex.SplitterNode {
		h.drawSplitter(b, n)
		return
	}
	switch c := n.Content.(type) {
	case Drawer:
		c.Draw(b)
	case string:
		fmt.Fprint(b, c)
	case fmt.Stringer:
		fmt.Fprint(b, c.String())
	}
}

func (h *Host) drawSplitter(b *lines.Box, n flex.Node) {
	style := h.opt.SplitterStyle
	switch {
	case n.Active:
		style = h.opt.ActiveStyle
	case n.Index == h.Focused():
		style = h.opt.FocusStyle
	}
	r := '│'
	if h.c.Orientation() == flex.Vertical {
		r = '─'
	}
	b.Fill(r).SetStyle(style)
}

// pointer maps given screen position to the container's coordinates.
func (h *Host) pointer(x, y int) flex.Pointer {
	return flex.Pointer{X: x - h.area.X, Y: y - h.area.Y}
}

// splitterAt returns the splitter at given position or nil.
func (h *Host) splitterAt(p flex.Pointer) *flex.Splitter {
	if p.X < 0 || p.Y < 0 || p.X >= h.area.Width || p.Y >= h.area.Height {
		return nil
	}
	along := h.c.Orientation().Along(p)
	nn := h.c.Frame().Nodes
	idx := slices.IndexFunc(nn, func(n flex.Node) bool {
		return n.Kind == flex.SplitterNode &&
			n.Offset <= along && along < n.Offset+n.Size
	})
	if idx < 0 {
		return nil
	}
	s, _ := h.c.Splitter(nn[idx].Index)
	return s
}

func (h *Host) mouse(e *lines.Env, m lines.Mouse) {
	h.with(e, func() {
		p := h.pointer(m.X, m.Y)
		switch m.Action {
		case lines.Press:
			if h.capture = h.splitterAt(p); h.capture != nil {
				h.capture.Press(p)
			}
		case lines.Drag:
			if h.capture != nil {
				h.capture.Move(p)
			}
		case lines.Release:
			if h.capture != nil {
				h.capture.Release(p)
				h.capture = nil
			}
		}
	})
}

func (h *Host) feature(e *lines.Env, f lines.Feature) {
	ss := h.c.Splitters()
	if len(ss) == 0 || !h.c.Bootstrapped() {
		return
	}
	h.with(e, func() {
		switch f {
		case lines.FtNext:
			h.focus = (h.focus + 1) % len(ss)
			h.drawAll()
		case lines.FtForward:
			h.step(ss, 1)
		case lines.FtBackward:
			h.step(ss, -1)
		}
	})
}

// step moves the focused splitter by given number of cells.
func (h *Host) step(ss []int, delta int) {
	if h.focus < 0 {
		h.focus = 0
	}
	idx := ss[h.focus]
	s, err := h.c.Splitter(idx)
	if err != nil {
		return
	}
	nn := h.c.Frame().Nodes
	o := h.c.Orientation()
	p := o.Move(flex.Pointer{}, nn[slices.IndexFunc(nn,
		func(n flex.Node) bool { return n.Index == idx })].Offset)
	s.Press(p)
	s.Move(o.Move(p, delta))
	s.Release(o.Move(p, delta))
}
