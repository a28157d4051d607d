// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import (
	"math"

	"golang.org/x/exp/slices"
)

// Entry is a child's share of its container's extent.  Splitter
// entries have always a flex of zero.
type Entry struct {
	Flex float64 `yaml:"flex" json:"flex"`

	// Constrained is true if the entry's flex was pinned or clamped by
	// the initial computation.
	Constrained bool `yaml:"constrained" json:"constrained"`
}

// State is the flex data of a container, i.e. one entry per child.
type State []Entry

// Clone returns a deep copy of s.
func (s State) Clone() State { return slices.Clone(s) }

// Sum returns the sum of all flex values of s.
func (s State) Sum() float64 {
	sum := 0.0
	for _, e := range s {
		sum += e.Flex
	}
	return sum
}

// finite coerces NaN and infinite values to zero.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
