// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import "golang.org/x/exp/constraints"

// clamp bounds v to [lo, hi]; the upper bound wins if lo > hi.
func clamp[F constraints.Float](v, lo, hi F) F {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// solve computes the initial flex data of given slots for given
// extent.  Fixed and pinned panels are constrained from the start.
// The remaining flex is repeatedly shared equally among the
// unconstrained panels while panels whose share violates their bounds
// are clamped and become constrained, until no panel is clamped
// anymore.  solve returns the flex data and the number of iterations
// which is at most the number of panels.
func solve(ss []slot, extent float64) (State, int) {
	k := 1 / extent
	ee := make(State, len(ss))
	lo, hi := make([]float64, len(ss)), make([]float64, len(ss))
	for i, s := range ss {
		if s.splitter {
			continue
		}
		lo[i], hi[i] = s.lo*k, s.hi*k
		switch {
		case s.fixed:
			ee[i] = Entry{Flex: finite(hi[i]), Constrained: true}
		case s.pinned:
			ee[i] = Entry{
				Flex: finite(clamp(s.flex, lo[i], hi[i])), Constrained: true}
		}
	}

	iterations := 0
	for {
		free, n := 1.0, 0
		for i, s := range ss {
			if s.splitter {
				continue
			}
			if ee[i].Constrained {
				free -= ee[i].Flex
				continue
			}
			n++
		}
		if n == 0 {
			break
		}
		iterations++
		share, settled := free/float64(n), true
		for i, s := range ss {
			if s.splitter || ee[i].Constrained {
				continue
			}
			flex := clamp(share, lo[i], hi[i])
			ee[i].Flex = finite(flex)
			if flex != share {
				ee[i].Constrained, settled = true, false
			}
		}
		if settled {
			break
		}
	}
	return ee, iterations
}
