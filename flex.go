// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package flex arranges panels along a single axis giving each panel a
proportional share of the available extent, its flex.  Splitters
between panels let the user redistribute the extent by dragging them:

	+---------+-+---------+-+---------+
	| panel 0 |s| panel 1 |s| panel 2 |
	+---------+-+---------+-+---------+
	 flex .33      flex .33    flex .33

A [Container] is created from its children and [Options]:

	c, err := flex.New(flex.Options{
		Orientation: flex.Horizontal,
		Scheduler:   host,
		Observer:    host,
		Measure:     host.Width,
	},
		flex.NewPanel("left", flex.MinSize(10)),
		flex.NewSplitter(false),
		flex.NewPanel("right"),
	)

Once mounted a container waits for the first positive extent reported
by its measure function to compute the initial flex values honoring
the panels' min, max, fixed and pinned constraints.  Afterwards the
flex values only change by dragging splitters: pressure which can't be
absorbed by a splitter's immediate neighbors propagates past the next
splitter if that splitter propagates.

The State of a container may be used as snapshot for a new container
which then skips the initial computation.
*/
package flex

import "fmt"

// Orientation determines the main axis of a container.
type Orientation uint8

const (
	// Horizontal containers lay out their children in a row, i.e.
	// along the x-axis.
	Horizontal Orientation = iota

	// Vertical containers lay out their children in a column, i.e.
	// along the y-axis.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps "horizontal" and "vertical" to the respective
// orientation and fails with ErrOrientation otherwise.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: %q", ErrOrientation, s)
}

// Along returns given pointer's coordinate on o's main axis.
func (o Orientation) Along(p Pointer) int {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// Move returns given pointer moved by given delta along o's main axis.
func (o Orientation) Move(p Pointer, delta int) Pointer {
	if o == Vertical {
		p.Y += delta
		return p
	}
	p.X += delta
	return p
}
