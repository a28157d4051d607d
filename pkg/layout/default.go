// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layout

// DefaultYAML is the layout used if no descriptor is given.
const DefaultYAML = `orientation: horizontal
children:
  - panel:
      title: flex
      text: |-
        drag a splitter with the mouse
        or focus it with tab and move
        it with the arrow keys;
        q quits
      minSize: 20
  - splitter: {propagate: true}
  - panel:
      table:
        - [panel, min, max]
        - [left, "20", "-"]
        - [middle, "5", "30"]
        - [right, "10", "-"]
      minSize: 5
      maxSize: 30
  - splitter: {propagate: true}
  - panel:
      title: progress
      progress: 0.4
      minSize: 10
`

// Default returns the parsed default layout.
func Default() *Descriptor {
	d, err := Parse([]byte(DefaultYAML))
	if err != nil {
		panic(err)
	}
	return d
}
