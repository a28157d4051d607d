// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import (
	"math"

	"golang.org/x/exp/slices"
)

// NodeKind discriminates the nodes of a frame.
type NodeKind uint8

const (
	PanelNode NodeKind = iota
	SplitterNode
)

// Node is a child's geometry in cells along its container's main axis
// together with what is needed to render it.
type Node struct {
	Kind  NodeKind
	Index int

	// Offset is the node's first cell on the main axis.
	Offset int

	// Size is the number of cells the node occupies on the main axis.
	Size int

	Flex float64

	// Active is true for a dragged splitter.
	Active bool

	// Content is a panel's content.
	Content interface{}
}

func (n Node) sameAs(o Node) bool {
	return n.Kind == o.Kind && n.Offset == o.Offset &&
		n.Size == o.Size && n.Active == o.Active
}

// Frame is the rendering of a container at a given point in time.
type Frame struct {
	Orientation Orientation
	Style       interface{}
	Nodes       []Node
}

// Frame computes the cell geometry of the container's children.  Panel
// sizes are rounded such that their sum is the rounded sum of their
// exact sizes, giving the remaining cells to the panels with the
// largest fractions.
func (c *Container) Frame() Frame {
	f := Frame{
		Orientation: c.orientation,
		Style:       c.style,
		Nodes:       make([]Node, len(c.children)),
	}
	cells := c.cells()
	offset := 0
	for i, ch := range c.children {
		n := Node{Index: i, Offset: offset, Size: cells[i]}
		switch ch := ch.(type) {
		case *Panel:
			n.Content = ch.Content
			if e, ok := c.entry(i); ok {
				n.Flex = e.Flex
			}
		case *Splitter:
			n.Kind, n.Active = SplitterNode, ch.Active()
		}
		f.Nodes[i] = n
		offset += n.Size
	}
	return f
}

func (c *Container) cells() []int {
	sizes := c.Sizes()
	cells := make([]int, len(sizes))
	type fraction struct {
		idx  int
		frac float64
	}
	ff, exact, total := []fraction{}, 0.0, 0
	for i, ch := range c.children {
		if ch.slot().splitter {
			cells[i] = c.splitterSize
			continue
		}
		floor := math.Floor(sizes[i])
		cells[i] = int(floor)
		total += cells[i]
		exact += sizes[i]
		ff = append(ff, fraction{idx: i, frac: sizes[i] - floor})
	}
	slices.SortStableFunc(ff, func(a, b fraction) bool {
		return a.frac > b.frac
	})
	missing := int(math.Min(math.Round(exact), c.Extent())) - total
	for i := 0; i < missing && i < len(ff); i++ {
		cells[ff[i].idx]++
	}
	return cells
}
