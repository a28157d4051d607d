// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lines_test

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

var errScreen = errors.New("mock: screen: failing creation")

var errInit = errors.New("mock: screen: failing initialization")

// ScreenFactory mocks up failing tcell screen creation and
// initialization.
type ScreenFactory struct{ Fail, FailInit bool }

func (f *ScreenFactory) NewScreen() (tcell.Screen, error) {
	if f.Fail {
		return nil, errScreen
	}
	return f.NewSimulationScreen(""), nil
}

func (f *ScreenFactory) NewSimulationScreen(
	charset string,
) tcell.SimulationScreen {
	return &screen{
		SimulationScreen: tcell.NewSimulationScreen(charset),
		fail:             f.FailInit,
	}
}

type screen struct {
	tcell.SimulationScreen
	fail bool
}

func (s *screen) Init() error {
	if s.fail {
		return errInit
	}
	return s.SimulationScreen.Init()
}
