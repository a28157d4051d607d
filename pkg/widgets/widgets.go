// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package widgets provides panel contents which draw themselves into the
box of their panel, i.e. they implement panes.Drawer:

	flex.NewPanel(&widgets.Text{Title: "log", Body: "..."})

Lines exceeding the width of a box are truncated with an ellipsis.
*/
package widgets

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/slukits/flex/pkg/lines"
)

// Ellipsis marks truncated lines.
const Ellipsis = "…"

// ErrField is returned for the lookup of an unknown table field.
var ErrField = errors.New("widgets: no such field")

// ErrRow is returned for the lookup of a row out of a table's range.
var ErrRow = errors.New("widgets: no such row")

// TitleStyle is the style of a text's title line.
var TitleStyle = tcell.StyleDefault.Bold(true)

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Text has an optional title line followed by its body.
type Text struct {
	Title string
	Body  string
}

// Draw writes a text's title and body into given box.
func (t *Text) Draw(b *lines.Box) {
	b.Reset()
	first := 0
	if t.Title != "" {
		b.Line(0).Set(truncate(t.Title, b.Width)).SetStyle(TitleStyle)
		first = 1
	}
	for i, l := range strings.Split(t.Body, "\n") {
		if first+i >= b.Len() {
			break
		}
		b.Line(first + i).Set(truncate(l, b.Width))
	}
}

// Progress is a labeled progress bar with a value between 0 and 1.
type Progress struct {
	Label string
	Value float64
}

// Draw renders a progress bar in the first line of given box:
//
//	label [#####     ]  50%
func (p *Progress) Draw(b *lines.Box) {
	b.Reset()
	v := p.Value
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	percent := fmt.Sprintf("%3.0f%%", v*100)
	label := ""
	if p.Label != "" {
		label = p.Label + " "
	}
	bar := b.Width - runewidth.StringWidth(label) - len(percent) - 3
	if bar <= 0 {
		b.Line(0).Set(truncate(label+percent, b.Width))
		return
	}
	done := int(v*float64(bar) + 0.5)
	b.Line(0).Set(label + "[" + strings.Repeat("#", done) +
		strings.Repeat(" ", bar-done) + "] " + percent)
}
