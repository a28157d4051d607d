// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flex

// Pointer is a pointer position in a container's coordinates.
type Pointer struct{ X, Y int }

// MessageKind classifies the messages a splitter sends to its
// container.
type MessageKind uint8

const (
	// StartResize opens a drag session at the pointer's position.
	StartResize MessageKind = iota + 1

	// Resize reports a pointer move during a drag session.
	Resize

	// StopResize closes a drag session.
	StopResize
)

func (k MessageKind) String() string {
	switch k {
	case StartResize:
		return "splitter.startResize"
	case Resize:
		return "splitter.resize"
	case StopResize:
		return "splitter.stopResize"
	}
	return "splitter.unknown"
}

// Message is sent from a splitter to its container.
type Message struct {
	Kind MessageKind

	// Index is the sending splitter's index.
	Index int

	Pointer Pointer
}

// PanelEvent is passed to a panel's resize hooks.
type PanelEvent struct {
	Panel *Panel

	// Splitter is the index of the dragged splitter.
	Splitter int

	// Size is the panel's size on the container's main axis.
	Size float64

	Flex float64
}
