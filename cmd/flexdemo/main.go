// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Flexdemo runs a flex layout in the terminal.  Its panels are separated
by splitters which may be dragged with the mouse or focused with tab
and moved by the arrow keys.  The bottom line shows the panels' flex
values; constrained values are marked with a star.

Usage:

	flexdemo [--layout file.yml] [--state file.yml] [--orientation o] [--log file]

Without a layout file a default layout is shown.  If a state file is
given the layout's state is restored from it and saved to it on quit.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/slukits/flex/pkg/lines"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flexdemo: %v\n", err)
		os.Exit(1)
	}
}

var cfg config

var rootCmd = &cobra.Command{
	Use:   "flexdemo",
	Short: "Run a flex layout in the terminal",
	Long: `Flexdemo runs a flex layout given as YAML descriptor in the terminal.

Examples:
  flexdemo                                  # default layout
  flexdemo -l layout.yml -s state.yml       # restore and save state
  flexdemo -o column                        # default layout as column`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.layout, "layout", "l", "",
		"YAML layout descriptor")
	rootCmd.Flags().StringVarP(&cfg.state, "state", "s", "",
		"file to restore the layout's state from and save it to")
	rootCmd.Flags().StringVarP(&cfg.orientation, "orientation", "o", "",
		"overwrites the layout's orientation (row or column)")
	rootCmd.Flags().StringVar(&cfg.log, "log", "",
		"file to append log messages to")
}

// run blocks until the user quits.
func run(cfg config) error {
	lg, closeLog, err := openLog(cfg.log)
	if err != nil {
		return err
	}
	defer closeLog()
	ee, err := lines.New()
	if err != nil {
		return err
	}
	a, err := newApp(ee, cfg, lg)
	if err != nil {
		ee.QuitListening()
		return err
	}
	ee.Listen()
	return a.err
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "flexdemo ", log.LstdFlags), func() { f.Close() }, nil
}
