// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/slukits/flex"
	"github.com/slukits/flex/pkg/layout"
	"github.com/slukits/flex/pkg/lines"
	"github.com/slukits/flex/pkg/panes"
)

type config struct {
	layout      string
	state       string
	orientation string
	log         string
}

// app hosts the layout of a descriptor above a status bar.
type app struct {
	cfg  config
	log  *log.Logger
	host *panes.Host
	err  error
}

func newApp(ee *lines.Events, cfg config, lg *log.Logger) (*app, error) {
	d, err := descriptor(cfg)
	if err != nil {
		return nil, err
	}
	fo, err := d.Options()
	if err != nil {
		return nil, err
	}
	cc, err := d.Build()
	if err != nil {
		return nil, err
	}
	if cfg.state != "" {
		st, err := layout.LoadState(cfg.state)
		if err != nil {
			return nil, err
		}
		if st != nil && len(st) != len(cc) {
			lg.Printf("ignoring state of %d entries for %d children",
				len(st), len(cc))
			st = nil
		}
		fo.Snapshot = st
	}
	fo.Logger = lg
	a := &app{cfg: cfg, log: lg}
	a.host, err = panes.New(ee,
		panes.Options{Area: area, OnDraw: a.drawStatus}, fo, cc...)
	if err != nil {
		return nil, err
	}
	ee.Quit(a.quit)
	return a, nil
}

func descriptor(cfg config) (*layout.Descriptor, error) {
	d := layout.Default()
	if cfg.layout != "" {
		var err error
		if d, err = layout.Load(cfg.layout); err != nil {
			return nil, err
		}
	}
	if cfg.orientation != "" {
		d.Orientation = cfg.orientation
	}
	return d, nil
}

// area leaves the last screen line to the status bar.
func area(width, height int) panes.Rect {
	if height < statusHeight {
		return panes.Rect{Width: width}
	}
	return panes.Rect{Width: width, Height: height - statusHeight}
}

// quit saves the container's state if a state file was configured.
func (a *app) quit(e *lines.Env) {
	defer a.host.Close()
	st := a.host.Container().State()
	if a.cfg.state == "" || st == nil {
		return
	}
	if err := layout.SaveState(a.cfg.state, st); err != nil {
		a.log.Printf("quit: %v", err)
		a.err = err
		return
	}
	a.log.Printf("saved state to %s", a.cfg.state)
}

// panels returns the panels of the hosted container.
func (a *app) panels() []*flex.Panel {
	c, pp := a.host.Container(), []*flex.Panel{}
	for i := 0; i < c.Len(); i++ {
		if p, ok := c.Child(i).(*flex.Panel); ok {
			pp = append(pp, p)
		}
	}
	return pp
}
