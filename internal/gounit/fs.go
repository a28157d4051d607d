// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gounit

import (
	"os"
	fp "path/filepath"
)

// FS provides filesystem operations specifically for testing, i.e.
// without error handling and restricted to temporary directories.
// Failing file system operations fatal associated testing instance.
type FS struct{ t *T }

// FS returns the file system tools bound to a test.
func (t *T) FS() *FS { return &FS{t: t} }

// Tmp creates a new unique temporary directory which is removed after
// the test.
func (fs *FS) Tmp() *Dir {
	return &Dir{t: fs.t, path: fs.t.GoT().TempDir()}
}

// Dir provides file system operations inside its path.  The zero value
// is not usable; use [FS.Tmp] to obtain a Dir.
type Dir struct {
	t    *T
	path string
}

// Path returns the directory's path.
func (d *Dir) Path() string { return d.path }

// Join returns the path of given name inside the directory.
func (d *Dir) Join(name string) string { return fp.Join(d.path, name) }

// MkFile adds to given directory a new file (mod 0644) with given name
// and given content and returns its path.  MkFile fatales if the file
// already exists or can't be written.
func (d *Dir) MkFile(name string, content []byte) string {
	d.t.t.Helper()
	fl := d.Join(name)
	if _, err := os.Stat(fl); err == nil {
		d.t.Fatalf("gounit: fs: dir: mk file: %s already exists", name)
	}
	if err := os.WriteFile(fl, content, 0o644); err != nil {
		d.t.Fatalf("gounit: fs: dir: mk file: write: %v", err)
	}
	return fl
}

// FileContent returns the content of given file in the directory.
// FileContent fatales if it can't be read.
func (d *Dir) FileContent(name string) []byte {
	d.t.t.Helper()
	bb, err := os.ReadFile(d.Join(name))
	if err != nil {
		d.t.Fatalf("gounit: fs: dir: file content: %s: %v", name, err)
	}
	return bb
}
