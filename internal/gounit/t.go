// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gounit

import (
	"fmt"
	"testing"
)

// T instances are passed to suite tests providing means for logging,
// assertion, failing and cancellation of a test.
type T struct {
	t        *testing.T
	tearDown func(*T)

	// Not provides the negations of T's assertions.
	Not Not
}

func newT(t *testing.T, tearDown func(*T)) *T {
	suiteT := &T{t: t, tearDown: tearDown}
	suiteT.Not = Not{t: suiteT}
	return suiteT
}

// GoT returns the wrapped testing.T instance.
func (t *T) GoT() *testing.T { return t.t }

// Log writes given arguments to the wrapped test's log.
func (t *T) Log(args ...interface{}) {
	t.t.Helper()
	t.t.Log(args...)
}

// Logf writes given format string leveraging Sprintf to the wrapped
// test's log.
func (t *T) Logf(format string, args ...interface{}) {
	t.t.Helper()
	t.t.Log(fmt.Sprintf(format, args...))
}

// Parallel signals that this test may be run in parallel with other
// parallel flagged tests.
func (t *T) Parallel() { t.t.Parallel() }

// Error logs given arguments and flags test as failed but continues its
// execution.
func (t *T) Error(args ...interface{}) {
	t.t.Helper()
	t.t.Error(args...)
}

// Errorf logs given format-string leveraging fmt.Sprintf and flags test
// as failed but continues its execution.
func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Helper()
	t.t.Error(fmt.Sprintf(format, args...))
}

// FailNow cancels the execution of the test after a potential tear-down
// was called.
func (t *T) FailNow() {
	t.t.Helper()
	if t.tearDown != nil {
		t.tearDown(t)
	}
	t.t.FailNow()
}

// FatalIfNot cancels receiving test (see *FailNow*) if passed argument
// is false and is a no-op otherwise.
func (t *T) FatalIfNot(assertion bool) {
	if assertion {
		return
	}
	t.t.Helper()
	t.FailNow()
}

// FatalOn cancels receiving test (see *FailNow*) after logging given
// error message iff passed argument is not nil.
func (t *T) FatalOn(err error) {
	t.t.Helper()
	if err == nil {
		return
	}
	t.Fatal(err.Error())
}

// Fatal logs given arguments and cancels the test execution.
func (t *T) Fatal(args ...interface{}) {
	t.t.Helper()
	t.t.Log(args...)
	t.FailNow()
}

// Fatalf logs given format-string leveraging fmt.Sprintf and cancels
// the test execution.
func (t *T) Fatalf(format string, args ...interface{}) {
	t.t.Helper()
	t.t.Log(fmt.Sprintf(format, args...))
	t.FailNow()
}

// I instances are passed into a test suite's Init method.
type I struct{ t *testing.T }

// GoT returns the suite runner's testing.T instance.
func (i *I) GoT() *testing.T { return i.t }

// Log given arguments to the suite runner's log.
func (i *I) Log(args ...interface{}) {
	i.t.Helper()
	i.t.Log(args...)
}

// FatalOn cancels the suite's tests-run iff given error is not nil.
func (i *I) FatalOn(err error) {
	i.t.Helper()
	if err != nil {
		i.t.Fatal(err.Error())
	}
}

// F instances are passed into a test suite's Finalize method.
type F struct{ t *testing.T }

// GoT returns the suite runner's testing.T instance.
func (f *F) GoT() *testing.T { return f.t }

// Log given arguments to the suite runner's log.
func (f *F) Log(args ...interface{}) {
	f.t.Helper()
	f.t.Log(args...)
}
