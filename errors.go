// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import (
	"errors"
	"fmt"
)

// ErrFlex is wrapped by all errors of this package.
var ErrFlex = errors.New("flex")

// ErrNoPanels is returned by New if no panel was given.
var ErrNoPanels = fmt.Errorf("%w: container needs at least one panel",
	ErrFlex)

// ErrAdjacentSplitters is returned by New if two splitters follow each
// other.
var ErrAdjacentSplitters = fmt.Errorf(
	"%w: splitters may not be adjacent", ErrFlex)

// ErrSnapshotMismatch is returned by New if a snapshot's length
// doesn't match the number of children.
var ErrSnapshotMismatch = fmt.Errorf(
	"%w: snapshot doesn't match children", ErrFlex)

// ErrOrientation is returned for unknown orientation names.
var ErrOrientation = fmt.Errorf("%w: unknown orientation", ErrFlex)

// ErrSplitterIndex is returned for indices not denoting a splitter.
var ErrSplitterIndex = fmt.Errorf("%w: no splitter at index", ErrFlex)

// ErrBound is returned by New for a child already added to a
// container.
var ErrBound = fmt.Errorf("%w: child already bound to a container",
	ErrFlex)
