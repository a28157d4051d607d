// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Line represents a screen line of a box.  A changed line content is
// synchronized with the screen after the current event was reported.
// Its content is clipped to the line's width and padded with blanks.
// Note changes of a line are not concurrency save.
type Line struct {
	scr         *Screen
	x, y, width int
	content     string
	style       tcell.Style
	dirty       bool
}

// Set updates the content of a line.
func (l *Line) Set(content string) *Line {
	if content == l.content {
		return l
	}
	l.content = content
	l.queue()
	return l
}

// SetStyle updates the style a line's content is written with.
func (l *Line) SetStyle(s tcell.Style) *Line {
	if s == l.style {
		return l
	}
	l.style = s
	l.queue()
	return l
}

// String returns a line's content.
func (l *Line) String() string { return l.content }

// Style returns a line's style.
func (l *Line) Style() tcell.Style { return l.style }

// Width returns the number of cells of a line.
func (l *Line) Width() int { return l.width }

// IsDirty returns true if a line content has changed since the last
// screen synchronization.
func (l *Line) IsDirty() bool { return l.dirty }

func (l *Line) queue() {
	if l.dirty || l.scr == nil {
		return
	}
	l.dirty = true
	l.scr.dirty = append(l.scr.dirty, l)
}

func (l *Line) sync() {
	l.dirty = false
	x, end := l.x, l.x+l.width
	for _, r := range runewidth.Truncate(l.content, l.width, "") {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		l.scr.lib.SetContent(x, l.y, r, nil, l.style)
		x += w
	}
	for ; x < end; x++ {
		l.scr.lib.SetContent(x, l.y, ' ', nil, l.style)
	}
}
