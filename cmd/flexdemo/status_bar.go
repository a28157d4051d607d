// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/slukits/flex"
	"github.com/slukits/flex/pkg/lines"
)

const statusHeight = 1

var statusStyle = tcell.StyleDefault.Reverse(true)

// drawStatus shows the flex of each panel in the last screen line
// followed by the dragged splitter if any.
func (a *app) drawStatus(e *lines.Env, _ flex.Frame) {
	w, h := e.Size()
	if h < statusHeight {
		return
	}
	e.Box(0, h-statusHeight, w, statusHeight).SetStyle(statusStyle).
		Line(0).Set(a.status())
}

func (a *app) status() string {
	ss := []string{"flex"}
	for _, p := range a.panels() {
		e, ok := p.Entry()
		if !ok {
			continue
		}
		s := fmt.Sprintf("%.2f", e.Flex)
		if e.Constrained {
			s += "*"
		}
		ss = append(ss, s)
	}
	if idx, ok := a.host.Container().Dragging(); ok {
		ss = append(ss, fmt.Sprintf(" resizing %d", idx))
	}
	return strings.Join(ss, " ")
}
