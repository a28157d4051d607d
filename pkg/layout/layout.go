// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package layout describes flex containers in YAML and persists their
state snapshots:

	orientation: horizontal
	children:
	  - panel: {title: files, text: "a.go\nb.go", minSize: 10}
	  - splitter: {propagate: true}
	  - panel: {title: build, progress: 0.4}

A descriptor's children become flex panels and splitters whose panel
contents are widgets.  SaveState and LoadState store a container's
state in a YAML file or, given a ".json" extension, in a JSON file.
*/
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slukits/flex"
	"github.com/slukits/flex/pkg/widgets"
	"gopkg.in/yaml.v3"
)

// ErrDescriptor is wrapped by all errors reporting an invalid layout
// descriptor.
var ErrDescriptor = errors.New("layout: invalid descriptor")

// Descriptor describes a flex container.
type Descriptor struct {
	Orientation  string            `yaml:"orientation,omitempty"`
	SplitterSize int               `yaml:"splitterSize,omitempty"`
	Children     []ChildDescriptor `yaml:"children"`
}

// ChildDescriptor describes either a panel or a splitter.
type ChildDescriptor struct {
	Panel    *PanelDescriptor    `yaml:"panel,omitempty"`
	Splitter *SplitterDescriptor `yaml:"splitter,omitempty"`
}

// PanelDescriptor describes a panel's content and constraints.  A
// panel shows a table if it has one, a progress bar labeled with its
// title if it has a progress and a text otherwise.  The first row of a
// table holds its field names.
type PanelDescriptor struct {
	Title    string     `yaml:"title,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Progress *float64   `yaml:"progress,omitempty"`
	Table    [][]string `yaml:"table,omitempty"`
	MinSize  *float64   `yaml:"minSize,omitempty"`
	MaxSize  *float64   `yaml:"maxSize,omitempty"`
	Size     *float64   `yaml:"size,omitempty"`
	Flex     *float64   `yaml:"flex,omitempty"`
}

// SplitterDescriptor describes a splitter.
type SplitterDescriptor struct {
	Propagate bool `yaml:"propagate,omitempty"`
}

// Parse unmarshals and validates given YAML layout descriptor.
func Parse(data []byte) (*Descriptor, error) {
	d := &Descriptor{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptor, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load parses the layout descriptor at given path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: load: %w", err)
	}
	return Parse(data)
}

// Validate fails with a wrapped ErrDescriptor if a descriptor's
// orientation is unknown, it has no children, one of its children is
// neither or both a panel and a splitter or a panel has a negative
// size constraint.
func (d *Descriptor) Validate() error {
	if _, err := d.orientation(); err != nil {
		return fmt.Errorf("%w: %v", ErrDescriptor, err)
	}
	if len(d.Children) == 0 {
		return fmt.Errorf("%w: no children", ErrDescriptor)
	}
	if d.SplitterSize < 0 {
		return fmt.Errorf("%w: negative splitter size", ErrDescriptor)
	}
	for i, c := range d.Children {
		if (c.Panel == nil) == (c.Splitter == nil) {
			return fmt.Errorf(
				"%w: child %d: need either a panel or a splitter",
				ErrDescriptor, i)
		}
		if c.Panel == nil {
			continue
		}
		for _, v := range []*float64{c.Panel.MinSize, c.Panel.MaxSize,
			c.Panel.Size, c.Panel.Flex, c.Panel.Progress} {
			if v != nil && *v < 0 {
				return fmt.Errorf("%w: child %d: negative value",
					ErrDescriptor, i)
			}
		}
	}
	return nil
}

func (d *Descriptor) orientation() (flex.Orientation, error) {
	if d.Orientation == "" {
		return flex.Horizontal, nil
	}
	return flex.ParseOrientation(d.Orientation)
}

// Options returns the container options of a descriptor.
func (d *Descriptor) Options() (flex.Options, error) {
	o, err := d.orientation()
	if err != nil {
		return flex.Options{}, fmt.Errorf("%w: %v", ErrDescriptor, err)
	}
	return flex.Options{Orientation: o, SplitterSize: d.SplitterSize}, nil
}

// Build creates the panels and splitters of a descriptor's children.
func (d *Descriptor) Build() ([]flex.Child, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	cc := make([]flex.Child, len(d.Children))
	for i, c := range d.Children {
		if c.Splitter != nil {
			cc[i] = flex.NewSplitter(c.Splitter.Propagate)
			continue
		}
		cc[i] = c.Panel.panel()
	}
	return cc, nil
}

func (p *PanelDescriptor) panel() *flex.Panel {
	oo := []flex.PanelOption{}
	if p.MinSize != nil {
		oo = append(oo, flex.MinSize(*p.MinSize))
	}
	if p.MaxSize != nil {
		oo = append(oo, flex.MaxSize(*p.MaxSize))
	}
	if p.Size != nil {
		oo = append(oo, flex.FixedSize(*p.Size))
	}
	if p.Flex != nil {
		oo = append(oo, flex.PinnedFlex(*p.Flex))
	}
	return flex.NewPanel(p.content(), oo...)
}

func (p *PanelDescriptor) content() interface{} {
	switch {
	case len(p.Table) > 0:
		t := widgets.NewTable(p.Table[0]...)
		for _, r := range p.Table[1:] {
			t.Add(r...)
		}
		return t
	case p.Progress != nil:
		return &widgets.Progress{Label: p.Title, Value: *p.Progress}
	default:
		return &widgets.Text{Title: p.Title, Body: p.Text}
	}
}

func isJSON(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// SaveState writes given state to given path.
func SaveState(path string, s flex.State) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("layout: save state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("layout: save state: %w", err)
	}
	return nil
}

// LoadState reads the state stored at given path.  A missing file
// yields a nil state and no error.
func LoadState(path string) (flex.State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("layout: load state: %w", err)
	}
	var s flex.State
	if isJSON(path) {
		err = json.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("layout: load state: %w", err)
	}
	return s, nil
}
