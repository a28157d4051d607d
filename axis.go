// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import "math"

// epsilon is the remainder below which a dispatch doesn't propagate.
const epsilon = 1e-9

// axis is a snapshot of a container's children and their sizes in
// cells taken at a drag step.  Its methods don't modify it.
type axis struct {
	slots []slot
	sizes []float64
}

// change is the size change of a panel during a drag step.
type change struct {
	idx      int
	from, to float64
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func (a axis) isPanel(idx int) bool {
	return idx >= 0 && idx < len(a.slots) && !a.slots[idx].splitter
}

// propagates reports if the splitter two slots away from the splitter
// at given index in given direction passes on resize pressure.
func (a axis) propagates(idx int, dir float64) bool {
	next := idx + 2*int(dir)
	return next >= 0 && next < len(a.slots) &&
		a.slots[next].splitter && a.slots[next].propagate
}

// stretchSide returns the direction of the panel growing if the
// splitter is moved by given offset: the panel before the splitter
// grows for positive offsets.
func stretchSide(offset float64) float64 { return -sign(offset) }

// stretchRoom returns how much the panel at given index may grow.  A
// fixed panel keeps whatever size the last layout gave it.
func (a axis) stretchRoom(p int) float64 {
	if a.slots[p].fixed {
		return 0
	}
	return math.Max(0, a.slots[p].hi-a.sizes[p])
}

func (a axis) shrinkRoom(p int) float64 {
	if a.slots[p].fixed {
		return 0
	}
	return math.Max(0, a.sizes[p]-a.slots[p].lo)
}

// availableStretch returns how much of given offset the panels on the
// stretch side of the splitter at given index can absorb.
func (a axis) availableStretch(idx int, offset float64) float64 {
	dir := stretchSide(offset)
	p := idx + int(dir)
	if offset == 0 || !a.isPanel(p) {
		return 0
	}
	abs := math.Abs(offset)
	available := a.stretchRoom(p)
	if available < abs && a.propagates(idx, dir) {
		return available + a.availableStretch(
			idx+2*int(dir), sign(offset)*(abs-available))
	}
	return math.Min(available, abs)
}

// availableShrink returns how much of given offset the panels on the
// shrink side of the splitter at given index can give up.
func (a axis) availableShrink(idx int, offset float64) float64 {
	dir := sign(offset)
	p := idx + int(dir)
	if offset == 0 || !a.isPanel(p) {
		return 0
	}
	abs := math.Abs(offset)
	available := a.shrinkRoom(p)
	if available < abs && a.propagates(idx, dir) {
		return available + a.availableShrink(
			idx+2*int(dir), sign(offset)*(abs-available))
	}
	return math.Min(available, abs)
}

// availableOffset caps given offset for the splitter at given index to
// what both sides can accommodate.
func (a axis) availableOffset(idx int, offset float64) float64 {
	v := math.Min(a.availableStretch(idx, offset),
		a.availableShrink(idx, offset))
	if v == 0 {
		return 0
	}
	return v * sign(offset)
}

// dispatchStretch grows the panels on the stretch side of the
// splitter at given index by given offset, starting with its neighbor
// and continuing past propagating splitters with the remainder.
func (a axis) dispatchStretch(idx int, offset float64) []change {
	dir := stretchSide(offset)
	p := idx + int(dir)
	if offset == 0 || !a.isPanel(p) {
		return nil
	}
	abs := math.Abs(offset)
	from := a.sizes[p]
	to := math.Max(from, math.Min(a.slots[p].hi, from+abs))
	if a.slots[p].fixed {
		to = from
	}
	var cc []change
	if to != from {
		cc = append(cc, change{idx: p, from: from, to: to})
	}
	if rest := abs - (to - from); rest > epsilon && a.propagates(idx, dir) {
		cc = append(cc, a.dispatchStretch(
			idx+2*int(dir), sign(offset)*rest)...)
	}
	return cc
}

// dispatchShrink shrinks the panels on the shrink side of the splitter
// at given index by given offset analogously to dispatchStretch.
func (a axis) dispatchShrink(idx int, offset float64) []change {
	dir := sign(offset)
	p := idx + int(dir)
	if offset == 0 || !a.isPanel(p) {
		return nil
	}
	abs := math.Abs(offset)
	from := a.sizes[p]
	to := math.Min(from, math.Max(a.slots[p].lo, from-abs))
	if a.slots[p].fixed {
		to = from
	}
	var cc []change
	if to != from {
		cc = append(cc, change{idx: p, from: from, to: to})
	}
	if rest := abs - (from - to); rest > epsilon && a.propagates(idx, dir) {
		cc = append(cc, a.dispatchShrink(
			idx+2*int(dir), sign(offset)*rest)...)
	}
	return cc
}

// rescale returns given flex scaled from given old size to given new
// size.  A panel without flex or size gets its share of given extent.
func rescale(flex, from, to, extent float64) float64 {
	if flex > 0 && from > 0 {
		return finite(flex * to / from)
	}
	return finite(to / extent)
}

// adjustFlex spreads the difference between the flex sums of given
// touched entries before and after a drag step evenly over them.
func adjustFlex(ee State, touched []int, before map[int]float64) {
	if len(touched) == 0 {
		return
	}
	drift := 0.0
	for _, idx := range touched {
		drift += before[idx] - ee[idx].Flex
	}
	drift /= float64(len(touched))
	for _, idx := range touched {
		ee[idx].Flex += drift
	}
}
