// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gounit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// assertErr is the format-string for assertion errors.
const assertErr = "assert %s:\n%v"

// True fails the test and returns false iff given value is not true.
func (t T) True(value bool) bool {
	t.t.Helper()
	if !value {
		t.Errorf(assertErr, "true", "expected given value to be true")
		return false
	}
	return true
}

// Eq errors with a diff and returns false if given values are not
// considered equal.  a and b are equal if
//   - they are the same pointer
//   - their string representations are the same, i.e. strings compare
//     as they are, Stringer implementations by their String value and
//     anything else by its %v formatting.
//
// Values of different types are not equal unless one of them is a
// string and the other one a Stringer.
func (t T) Eq(a, b interface{}) bool {
	t.t.Helper()
	if d := eqDiff(a, b); d != "" {
		t.Errorf(assertErr, "equal", d)
		return false
	}
	return true
}

func eqDiff(a, b interface{}) string {
	ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)
	if ta != tb && !isStringers(a, b) {
		return fmt.Sprintf("types mismatch %v != %v", ta, tb)
	}
	if reflect.ValueOf(a).Kind() == reflect.Ptr {
		if a != b {
			return fmt.Sprintf("%p != %p", a, b)
		}
		return ""
	}
	sa, sb := toString(a), toString(b)
	if sa == sb {
		return ""
	}
	return cmp.Diff(sa, sb)
}

func isStringers(a, b interface{}) bool {
	_, okA := a.(fmt.Stringer)
	_, okB := b.(fmt.Stringer)
	_, strA := a.(string)
	_, strB := b.(string)
	return okA && okB || okA && strB || strA && okB
}

func toString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Margin is the default absolute tolerance of [T.Near].
const Margin = 1e-9

// Near fails the test and returns false iff given values differ by
// more than given margin which defaults to [Margin].  a and b may be
// floats or arbitrary structures of floats, e.g. slices or structs with
// exported float fields.
func (t T) Near(a, b interface{}, margin ...float64) bool {
	t.t.Helper()
	m := Margin
	if len(margin) > 0 {
		m = margin[0]
	}
	if d := cmp.Diff(a, b, cmpopts.EquateApprox(0, m)); d != "" {
		t.Errorf(assertErr, "near", d)
		return false
	}
	return true
}

// Contains fails the test and returns false iff given value's string
// representation doesn't contain given sub-string.
func (t T) Contains(value interface{}, sub string) bool {
	t.t.Helper()
	if !strings.Contains(toString(value), sub) {
		t.Errorf(assertErr, "contains", fmt.Sprintf(
			"\n'%s'\ndoesn't contain\n'%s'", toString(value), sub))
		return false
	}
	return true
}

// ErrIs fails the test and returns false iff given err doesn't
// implement the error-interface or doesn't wrap given target.
func (t T) ErrIs(err interface{}, target error) bool {
	t.t.Helper()
	e, ok := err.(error)
	if !ok {
		t.Errorf(assertErr, "error is", "given value is no error")
		return false
	}
	if errors.Is(e, target) {
		return true
	}
	t.Errorf(assertErr, "error is", fmt.Sprintf(
		"given error doesn't wrap target-error: %+v\n%+v", e, target))
	return false
}

// Panics fails the test and returns false iff given function doesn't
// panic.
func (t T) Panics(f func()) (hasPanicked bool) {
	t.t.Helper()
	defer func() {
		t.t.Helper()
		if r := recover(); r == nil {
			t.Errorf(assertErr, "panics", "given function doesn't panic")
			hasPanicked = false
			return
		}
		hasPanicked = true
	}()
	f()
	return true
}

// Within tries after each step of given time-stepper if given condition
// returns true and fails the test iff the whole duration of given time
// stepper is elapsed without given condition returning true.
func (t T) Within(d *TimeStepper, cond func() bool) (fulfilled bool) {
	done := make(chan bool)
	go func() {
		for {
			time.Sleep(d.Step())
			if cond() {
				done <- true
				return
			}
			if !d.AddStep() {
				done <- false
				return
			}
		}
	}()
	t.t.Helper()
	if !<-done {
		t.Errorf(assertErr, "within", "timeout while condition unfulfilled")
		return false
	}
	return true
}

// Not provides the negated assertions of a [T] instance.
type Not struct{ t *T }

// True passes iff given value is false.
func (n Not) True(value bool) bool {
	n.t.t.Helper()
	if value {
		n.t.Errorf(assertErr, "not-true", "expected given value be false")
		return false
	}
	return true
}

// Eq passes iff given values are not considered equal by [T.Eq].
func (n Not) Eq(a, b interface{}) bool {
	n.t.t.Helper()
	if eqDiff(a, b) == "" {
		n.t.Errorf(assertErr, "not-equal", fmt.Sprintf(
			"%v equals %v", toString(a), toString(b)))
		return false
	}
	return true
}

// Contains passes iff given value's string representation doesn't
// contain given sub-string.
func (n Not) Contains(value interface{}, sub string) bool {
	n.t.t.Helper()
	if strings.Contains(toString(value), sub) {
		n.t.Errorf(assertErr, "not-contains", fmt.Sprintf(
			"\n'%s'\ndoes contain\n'%s'", toString(value), sub))
		return false
	}
	return true
}
