// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gounit

import (
	"sync"
	"time"
)

// Fixtures keeps one fixture per test of a suite whose tests run in
// parallel.  Set it up in SetUp and release it in TearDown:
//
//	type table struct {
//	    Suite
//	    fx Fixtures
//	}
//
//	func (s *table) SetUp(t *T) { t.Parallel(); s.fx.Set(t, newTable()) }
//	func (s *table) TearDown(t *T) { s.fx.Del(t) }
type Fixtures struct{ m sync.Map }

// Set binds given fixture to given test.
func (ff *Fixtures) Set(t *T, fixture interface{}) { ff.m.Store(t, fixture) }

// Get returns the fixture bound to given test or nil.
func (ff *Fixtures) Get(t *T) interface{} {
	fixture, _ := ff.m.Load(t)
	return fixture
}

// Del unbinds given test's fixture and returns it.
func (ff *Fixtures) Del(t *T) interface{} {
	fixture, _ := ff.m.LoadAndDelete(t)
	return fixture
}

const (
	defaultTimeout  = 10 * time.Millisecond
	defaultInterval = time.Millisecond
)

// TimeStepper paces polling assertions like Within.  Zero fields
// default to a 10ms timeout polled every millisecond.
type TimeStepper struct {
	Timeout, Interval time.Duration
	elapsed           time.Duration
}

// Step returns the polling interval.
func (ts *TimeStepper) Step() time.Duration {
	if ts.Interval <= 0 {
		return defaultInterval
	}
	return ts.Interval
}

// AddStep accounts for one more interval and reports if the timeout
// isn't reached yet.
func (ts *TimeStepper) AddStep() bool {
	timeout := ts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ts.elapsed += ts.Step()
	return ts.elapsed < timeout
}
