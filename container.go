// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/slukits/ints"
)

// Scheduler batches and performs the rendering of a container's
// children.
type Scheduler interface {

	// Batch executes given function and performs all renderings
	// requested during its execution afterwards at once.
	Batch(func())

	// Render requests the rendering of given node.
	Render(Node)
}

// ResizeObserver notifies about size changes of the area a container
// is rendered into.
type ResizeObserver interface {

	// Observe registers given callback and returns a function removing
	// it again.
	Observe(notify func()) (disconnect func())
}

// Options configure a container at its creation.
type Options struct {
	Orientation Orientation

	// Style is passed through to a container's frames for its host.
	Style interface{}

	// Snapshot is the state of a previous container with the same
	// children.  If set the initial flex computation is skipped.
	Snapshot State

	Scheduler Scheduler

	// Observer notifies the container about its first extent.  If nil
	// the extent is measured once at mounting.
	Observer ResizeObserver

	// Measure returns a container's extent along its main axis in
	// cells including the cells of its splitters.
	Measure func() int

	// SplitterSize is the number of cells a splitter occupies along the
	// main axis; it defaults to 1.
	SplitterSize int

	// Logger defaults to a logger discarding its output.
	Logger *log.Logger
}

// stage is a container's lifecycle stage.
type stage uint8

const (
	unmeasured stage = iota
	bootstrapped
	unmounted
)

// session is an open drag session.
type session struct {
	splitter int

	// reference is the pointer's position on the main axis which was
	// accounted for by the last resize.
	reference float64
}

// Container arranges panels and splitters along its main axis keeping
// one flex entry per child.  A Container is not safe for concurrent
// use.
type Container struct {
	orientation  Orientation
	style        interface{}
	children     []Child
	flexData     State
	snapshot     State
	scheduler    Scheduler
	observer     ResizeObserver
	measure      func() int
	splitterSize int
	log          *log.Logger
	stage        stage
	mounted      bool
	disconnect   func()
	drag         *session
	frame        Frame
}

// New creates a container with given options for given children.  It
// fails if there is no panel among the children, if two splitters are
// adjacent or if a given snapshot doesn't match the children.
func New(o Options, cc ...Child) (*Container, error) {
	if err := validate(cc); err != nil {
		return nil, err
	}
	if o.Snapshot != nil && len(o.Snapshot) != len(cc) {
		return nil, fmt.Errorf("%w: got %d entries for %d children",
			ErrSnapshotMismatch, len(o.Snapshot), len(cc))
	}
	c := &Container{
		orientation:  o.Orientation,
		style:        o.Style,
		children:     append([]Child{}, cc...),
		snapshot:     o.Snapshot.Clone(),
		scheduler:    o.Scheduler,
		observer:     o.Observer,
		measure:      o.Measure,
		splitterSize: o.SplitterSize,
		log:          o.Logger,
	}
	if c.splitterSize <= 0 {
		c.splitterSize = 1
	}
	if c.log == nil {
		c.log = log.New(io.Discard, "", 0)
	}
	for i, ch := range c.children {
		ch.bind(c, i)
	}
	return c, nil
}

func validate(cc []Child) error {
	panels := 0
	for i, c := range cc {
		if c.Index() != -1 {
			return fmt.Errorf("%w: child %d", ErrBound, i)
		}
		if !c.slot().splitter {
			panels++
			continue
		}
		if i > 0 && cc[i-1].slot().splitter {
			return fmt.Errorf("%w: at %d and %d",
				ErrAdjacentSplitters, i-1, i)
		}
	}
	if panels == 0 {
		return ErrNoPanels
	}
	return nil
}

// Orientation returns the container's orientation.
func (c *Container) Orientation() Orientation { return c.orientation }

// Len returns the number of the container's children.
func (c *Container) Len() int { return len(c.children) }

// Child returns the child at given index or nil.
func (c *Container) Child(idx int) Child {
	if idx < 0 || idx >= len(c.children) {
		return nil
	}
	return c.children[idx]
}

// Splitter returns the splitter at given index or fails with
// ErrSplitterIndex.
func (c *Container) Splitter(idx int) (*Splitter, error) {
	s, ok := c.Child(idx).(*Splitter)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSplitterIndex, idx)
	}
	return s, nil
}

// Splitters returns the indices of the container's splitters.
func (c *Container) Splitters() []int {
	ii := []int{}
	for i, ch := range c.children {
		if _, ok := ch.(*Splitter); ok {
			ii = append(ii, i)
		}
	}
	return ii
}

// Bootstrapped returns true once the container has computed or adopted
// its flex data.
func (c *Container) Bootstrapped() bool { return c.stage == bootstrapped }

// Dragging returns the index of the dragged splitter and true during a
// drag session.
func (c *Container) Dragging() (int, bool) {
	if c.drag == nil {
		return -1, false
	}
	return c.drag.splitter, true
}

// State returns a deep copy of the container's flex data which is nil
// before the container was bootstrapped.
func (c *Container) State() State { return c.flexData.Clone() }

// Extent returns the extent shared by the container's panels, i.e. the
// measured extent minus the cells of its splitters.
func (c *Container) Extent() float64 {
	if c.measure == nil {
		return 0
	}
	ext := c.measure() - c.splitterSize*len(c.Splitters())
	if ext < 0 {
		return 0
	}
	return float64(ext)
}

// Sizes returns the sizes in cells of the container's children along
// its main axis.
func (c *Container) Sizes() []float64 {
	ss := make([]float64, len(c.children))
	for i, ch := range c.children {
		if ch.slot().splitter {
			ss[i] = float64(c.splitterSize)
			continue
		}
		ss[i] = c.size(i)
	}
	return ss
}

func (c *Container) entry(idx int) (Entry, bool) {
	if c.flexData == nil || idx < 0 || idx >= len(c.flexData) {
		return Entry{}, false
	}
	return c.flexData[idx], true
}

func (c *Container) size(idx int) float64 {
	e, ok := c.entry(idx)
	if !ok {
		return 0
	}
	return e.Flex * c.Extent()
}

// Mount connects the container to its resize observer.  Without an
// observer the container bootstraps right away if its extent is
// positive.
func (c *Container) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	if c.stage == unmounted {
		c.stage = unmeasured
	}
	if c.observer == nil {
		c.observed()
		return
	}
	c.disconnect = c.observer.Observe(c.observed)
}

// Unmount disconnects the container from its resize observer and
// destroys its flex data.
func (c *Container) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.release()
	for _, ch := range c.children {
		if s, ok := ch.(*Splitter); ok {
			s.active = false
		}
	}
	c.flexData, c.drag, c.frame = nil, nil, Frame{}
	c.stage = unmounted
}

func (c *Container) release() {
	if c.disconnect == nil {
		return
	}
	c.disconnect()
	c.disconnect = nil
}

// observed bootstraps the container on the first positive extent.
func (c *Container) observed() {
	if c.stage != unmeasured {
		return
	}
	ext := c.Extent()
	if ext <= 0 {
		c.log.Printf("flex: %s container: no extent yet", c.orientation)
		return
	}
	if c.snapshot != nil {
		c.flexData = c.snapshot.Clone()
		c.log.Printf("flex: %s container: restored %d entries",
			c.orientation, len(c.flexData))
	} else {
		ss := make([]slot, len(c.children))
		for i, ch := range c.children {
			ss[i] = ch.slot()
		}
		var iterations int
		c.flexData, iterations = solve(ss, ext)
		c.log.Printf("flex: %s container: solved %d children for "+
			"extent %v in %d iterations", c.orientation,
			len(c.children), ext, iterations)
	}
	c.stage = bootstrapped
	c.release()
	c.batch(func() { c.commit(nil, true) })
}

func (c *Container) batch(f func()) {
	if c.scheduler == nil {
		f()
		return
	}
	c.scheduler.Batch(f)
}

// handle processes the messages of the container's splitters.
func (c *Container) handle(m Message) {
	switch m.Kind {
	case StartResize:
		if c.stage != bootstrapped || c.drag != nil {
			return
		}
		c.drag = &session{splitter: m.Index,
			reference: float64(c.orientation.Along(m.Pointer))}
		c.neighbors(m.Index, func(p *Panel) {
			p.event(m.Index, p.OnStartResize)
		})
		c.batch(func() { c.commit(nil, false) })
	case Resize:
		if c.drag == nil || c.drag.splitter != m.Index {
			return
		}
		c.resize(m)
	case StopResize:
		if c.drag == nil || c.drag.splitter != m.Index {
			return
		}
		c.drag = nil
		c.neighbors(m.Index, func(p *Panel) {
			p.event(m.Index, p.OnStopResize)
		})
		c.batch(func() { c.commit(nil, false) })
	}
}

func (c *Container) neighbors(idx int, cb func(*Panel)) {
	for _, i := range []int{idx - 1, idx + 1} {
		if p, ok := c.Child(i).(*Panel); ok {
			cb(p)
		}
	}
}

func (c *Container) axis() axis {
	a := axis{
		slots: make([]slot, len(c.children)),
		sizes: c.Sizes(),
	}
	for i, ch := range c.children {
		a.slots[i] = ch.slot()
	}
	return a
}

// resize moves the dragged splitter by the pointer's offset to the
// drag session's reference position as far as the panels allow.
func (c *Container) resize(m Message) {
	raw := float64(c.orientation.Along(m.Pointer)) - c.drag.reference
	a := c.axis()
	offset := a.availableOffset(m.Index, raw)
	if math.Abs(offset) < epsilon {
		return
	}
	c.drag.reference += offset
	cc := append(a.dispatchStretch(m.Index, offset),
		a.dispatchShrink(m.Index, offset)...)
	c.batch(func() {
		touched := c.apply(cc)
		c.commit(touched, false)
		for _, idx := range touched.ToSlice() {
			if p, ok := c.children[idx].(*Panel); ok {
				p.event(m.Index, p.OnResize)
			}
		}
	})
}

// apply rescales the flex of the changed panels and rebalances them
// to keep their flex sum.
func (c *Container) apply(cc []change) *ints.Set {
	ext := c.Extent()
	touched := &ints.Set{}
	before := map[int]float64{}
	for _, ch := range cc {
		e := &c.flexData[ch.idx]
		if !touched.Has(ch.idx) {
			before[ch.idx] = e.Flex
		}
		e.Flex = rescale(e.Flex, ch.from, ch.to, ext)
		touched.Add(ch.idx)
	}
	adjustFlex(c.flexData, touched.ToSlice(), before)
	return touched
}

// commit renders each node of the current frame whose geometry or
// state differs from the last committed frame, which was touched or
// all nodes if all is true.
func (c *Container) commit(touched *ints.Set, all bool) {
	frame := c.Frame()
	for i, n := range frame.Nodes {
		changed := all || i >= len(c.frame.Nodes) ||
			!n.sameAs(c.frame.Nodes[i]) ||
			touched != nil && touched.Has(i)
		if changed && c.scheduler != nil {
			c.scheduler.Render(n)
		}
	}
	c.frame = frame
}
