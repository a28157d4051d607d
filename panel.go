// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import "math"

// Child is either a [Panel] or a [Splitter].
type Child interface {

	// Index returns the child's position in its container or -1 if
	// it wasn't added to a container.
	Index() int

	slot() slot
	bind(c *Container, idx int)
}

// slot holds a child's constraints on the main axis in cells.
type slot struct {
	splitter, propagate bool
	lo, hi              float64
	fixed, pinned       bool
	flex                float64
}

// lookup provides read access to a child's entry of its container.
type lookup interface {
	entry(idx int) (Entry, bool)
	size(idx int) float64
}

// Panel is a container child holding arbitrary content.  Its
// constraints are set at construction and read by its container.
type Panel struct {

	// Content is rendered by the host of the panel's container.
	Content interface{}

	// OnStartResize is called if an adjacent splitter starts being
	// dragged.
	OnStartResize func(PanelEvent)

	// OnResize is called for each drag step changing the panel's
	// size.
	OnResize func(PanelEvent)

	// OnStopResize is called if an adjacent splitter stops being
	// dragged.
	OnStopResize func(PanelEvent)

	min, max, size, flex float64
	fixed, pinned        bool
	idx                  int
	lookup               lookup
}

// PanelOption configures a panel at its construction.
type PanelOption func(*Panel)

// MinSize sets the minimal size of a panel which defaults to 1.
func MinSize(size float64) PanelOption {
	return func(p *Panel) { p.min = math.Max(0, size) }
}

// MaxSize sets the maximal size of a panel which is unbounded by
// default.
func MaxSize(size float64) PanelOption {
	return func(p *Panel) { p.max = math.Max(0, size) }
}

// FixedSize pins a panel at given size, i.e. its flex is not
// distributed and dragging never changes it.  A maximal size smaller
// than given size wins.
func FixedSize(size float64) PanelOption {
	return func(p *Panel) { p.size, p.fixed = math.Max(0, size), true }
}

// PinnedFlex pins a panel at given flex excluding it from the initial
// distribution of the free flex.
func PinnedFlex(flex float64) PanelOption {
	return func(p *Panel) { p.flex, p.pinned = math.Max(0, flex), true }
}

// NewPanel creates a new panel with given content configured by given
// options.
func NewPanel(content interface{}, oo ...PanelOption) *Panel {
	p := &Panel{Content: content, min: 1, max: math.Inf(1), idx: -1}
	for _, o := range oo {
		o(p)
	}
	return p
}

// Index returns the panel's position in its container or -1.
func (p *Panel) Index() int { return p.idx }

// Min returns the panel's minimal size.
func (p *Panel) Min() float64 { return p.min }

// Max returns the panel's maximal size.
func (p *Panel) Max() float64 { return p.max }

// Fixed returns a fixed panel's size and true; false otherwise.
func (p *Panel) Fixed() (float64, bool) { return p.size, p.fixed }

// Pinned returns a pinned panel's flex and true; false otherwise.
func (p *Panel) Pinned() (float64, bool) { return p.flex, p.pinned }

// Entry returns the panel's entry of its container's flex data and
// true; false if the panel isn't part of a bootstrapped container.
func (p *Panel) Entry() (Entry, bool) {
	if p.lookup == nil {
		return Entry{}, false
	}
	return p.lookup.entry(p.idx)
}

// Size returns the panel's current size in cells along its container's
// main axis.
func (p *Panel) Size() float64 {
	if p.lookup == nil {
		return 0
	}
	return p.lookup.size(p.idx)
}

func (p *Panel) slot() slot {
	s := slot{lo: p.min, hi: p.max, pinned: p.pinned, flex: p.flex}
	if p.fixed {
		s.hi = math.Min(p.max, p.size)
		s.lo, s.fixed = s.hi, true
	}
	if s.lo > s.hi {
		s.lo = s.hi
	}
	return s
}

func (p *Panel) bind(c *Container, idx int) {
	p.idx, p.lookup = idx, c
}

func (p *Panel) event(splitter int, hook func(PanelEvent)) {
	if hook == nil {
		return
	}
	e, _ := p.Entry()
	hook(PanelEvent{Panel: p, Splitter: splitter, Size: p.Size(),
		Flex: e.Flex})
}
