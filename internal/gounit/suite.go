// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gounit

import (
	"reflect"
	"strings"
	"testing"
)

// Suite implements the private method of the SuiteEmbedder interface,
// i.e. a test suite embeds a Suite to be runnable by [Run]:
//
//	type MySuite struct { gounit.Suite }
//
//	func TestMySuite(t *testing.T) { gounit.Run(&MySuite{}, t) }
type Suite struct {
	t               *testing.T
	self            interface{}
	value           reflect.Value
	rtype           reflect.Type
	setUp, tearDown *reflect.Method
}

// init initializes this suite's reused reflection values and handles
// its special methods if any.
func (s *Suite) init(self interface{}, t *testing.T) *Suite {
	s.self, s.t = self, t
	s.value = reflect.ValueOf(self)
	s.rtype = reflect.TypeOf(self)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		m := s.rtype.Method(i)
		switch m.Name {
		case "SetUp":
			s.setUp = &m
		case "TearDown":
			s.tearDown = &m
		case "Init":
			m.Func.Call([]reflect.Value{
				s.value, reflect.ValueOf(&I{t: t})})
		case "Finalize":
			finalize := m
			t.Cleanup(func() {
				finalize.Func.Call([]reflect.Value{
					s.value, reflect.ValueOf(&F{t: t})})
			})
		}
	}
	return s
}

const special = "SetUpTearDownInitFinalize"

// SuiteEmbedder is implemented by embedding a Suite instance.
type SuiteEmbedder interface {
	init(interface{}, *testing.T) *Suite
}

// Run sets up the embedded Suite instance and runs all methods of
// given suite which are public, have exactly one argument and are not
// special:
//
//   - Init(*gounit.I): run before any other method of a suite
//
//   - SetUp(*gounit.T): run before every suite-test
//
//   - TearDown(*gounit.T): run after every suite-test
//
//   - Finalize(*gounit.F): run after any other method of a suite
func Run(suite SuiteEmbedder, t *testing.T) {
	s := suite.init(suite, t)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		method := s.rtype.Method(i)
		if method.Type.NumIn() != 2 {
			continue
		}
		if strings.Contains(special, method.Name) {
			continue
		}
		t.Run(method.Name, s.subTest(method))
	}
}

// subTest wraps given test method into a function which can be passed
// to the Run method of a *testing.T instance.
func (s *Suite) subTest(test reflect.Method) func(*testing.T) {
	var tearDown func(t *T)
	if s.tearDown != nil {
		tearDown = func(t *T) {
			s.tearDown.Func.Call(
				[]reflect.Value{s.value, reflect.ValueOf(t)})
		}
	}
	return func(t *testing.T) {
		suiteT := newT(t, tearDown)
		vl := reflect.ValueOf(suiteT)
		if s.setUp != nil {
			s.setUp.Func.Call([]reflect.Value{s.value, vl})
		}
		test.Func.Call([]reflect.Value{s.value, vl})
		if tearDown != nil {
			tearDown(suiteT)
		}
	}
}
