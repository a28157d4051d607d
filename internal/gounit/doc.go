// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package gounit runs the test suites of this module.  A suite is a type
embedding [Suite] whose public methods taking a single *T argument are
its tests:

	type layout struct{ gounit.Suite }

	func (s *layout) SetUp(t *gounit.T) { t.Parallel() }

	func (s *layout) Splits_extent_equally(t *gounit.T) {
		t.Near([]float64{.5, .5}, sizes(t))
	}

	func TestLayout(t *testing.T) { gounit.Run(&layout{}, t) }

The special methods Init(*I), SetUp(*T), TearDown(*T) and Finalize(*F)
are called before the suite, before each test, after each test and
after the suite respectively.  A test's *T provides assertions which
report a diff of the compared values computed by go-cmp; negated
assertions are accessible through its Not field.
*/
package gounit
