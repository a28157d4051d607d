// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Box is a rectangular screen area made of lines.  A Box is an
// io.Writer:
//
//	fmt.Fprintf(e.Box(0, 0, 20, 2), "first\nsecond")
type Box struct {
	X, Y, Width, Height int
	ll                  []*Line
}

// Len returns the number of a box's lines.
func (b *Box) Len() int { return len(b.ll) }

// Line returns the box's line with given index.  Writes to the line of
// an index out of range are ignored.
func (b *Box) Line(idx int) *Line {
	if idx < 0 || idx >= len(b.ll) {
		return &Line{}
	}
	return b.ll[idx]
}

// For calls back for each line of a box.
func (b *Box) For(cb func(*Line)) {
	for _, l := range b.ll {
		cb(l)
	}
}

// Fill sets each cell of a box to given rune.
func (b *Box) Fill(r rune) *Box {
	row := strings.Repeat(string(r), b.Width)
	b.For(func(l *Line) { l.Set(row) })
	return b
}

// SetStyle sets the style of all lines of a box.
func (b *Box) SetStyle(s tcell.Style) *Box {
	b.For(func(l *Line) { l.SetStyle(s) })
	return b
}

// Reset blanks all lines of a box.
func (b *Box) Reset() *Box {
	b.For(func(l *Line) { l.Set("") })
	return b
}

// Write replaces a box's content with given bytes whereas each line
// break starts a new line.  Lines beyond the box's height are dropped.
func (b *Box) Write(p []byte) (int, error) {
	ss := strings.Split(string(p), "\n")
	for i, l := range b.ll {
		if i < len(ss) {
			l.Set(ss[i])
			continue
		}
		l.Set("")
	}
	return len(p), nil
}

// String returns the contents of a box's lines separated by line
// breaks.
func (b *Box) String() string {
	ss := make([]string, len(b.ll))
	for i, l := range b.ll {
		ss[i] = l.String()
	}
	return strings.Join(ss, "\n")
}
