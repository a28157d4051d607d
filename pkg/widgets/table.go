// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/slukits/flex/pkg/lines"
)

// Table has named fields and rows of values for these fields.  Its
// columns are aligned to their widest value.
type Table struct {
	fields []string
	rows   [][]string
}

// NewTable creates a table with given fields.
func NewTable(fields ...string) *Table {
	return &Table{fields: fields}
}

// Fields returns the fields of a table.
func (t *Table) Fields() []string { return t.fields }

// Len returns the number of rows of a table.
func (t *Table) Len() int { return len(t.rows) }

// Add appends a row with given values which are assigned to the
// table's fields in order; missing values are empty, surplus values
// are dropped.
func (t *Table) Add(vv ...string) *Table {
	row := make([]string, len(t.fields))
	copy(row, vv)
	t.rows = append(t.rows, row)
	return t
}

func (t *Table) field(f string) (int, error) {
	for i, name := range t.fields {
		if name == f {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrField, f)
}

// Cell returns the value of given field in given row.
func (t *Table) Cell(row int, field string) (string, error) {
	col, err := t.field(field)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("%w: %d", ErrRow, row)
	}
	return t.rows[row][col], nil
}

// Set replaces the value of given field in given row.
func (t *Table) Set(row int, field, value string) error {
	col, err := t.field(field)
	if err != nil {
		return err
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: %d", ErrRow, row)
	}
	t.rows[row][col] = value
	return nil
}

// Draw writes the field names in a title line followed by the rows.
func (t *Table) Draw(b *lines.Box) {
	b.Reset()
	ww := make([]int, len(t.fields))
	for i, f := range t.fields {
		ww[i] = runewidth.StringWidth(f)
	}
	for _, r := range t.rows {
		for i, v := range r {
			if w := runewidth.StringWidth(v); w > ww[i] {
				ww[i] = w
			}
		}
	}
	line := func(vv []string) string {
		ss := make([]string, len(vv))
		for i, v := range vv {
			ss[i] = runewidth.FillRight(v, ww[i])
		}
		return truncate(strings.TrimRight(strings.Join(ss, " "), " "),
			b.Width)
	}
	b.Line(0).Set(line(t.fields)).SetStyle(TitleStyle)
	for i, r := range t.rows {
		b.Line(i + 1).Set(line(r))
	}
}
