// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenelayoutctl builds a small sample scene tree, runs a
// transaction against it, and prints the emitted events with
// termenv-coloured kind labels. It exercises the whole render/diff/event
// pipeline end-to-end, the way the teacher's small cmd/ tools drive one
// package's public API from a thin main.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/cogentcore-labs/scenelayout/config"
	"github.com/cogentcore-labs/scenelayout/element"
	"github.com/cogentcore-labs/scenelayout/engine"
	"github.com/cogentcore-labs/scenelayout/scenetree"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "scenelayoutctl:", err)
			os.Exit(1)
		}
		if err := cfg.Apply(); err != nil {
			fmt.Fprintln(os.Stderr, "scenelayoutctl:", err)
			os.Exit(1)
		}
	}

	root := scenetree.NewRoot(element.NewGrid())
	e := engine.NewEngine(root)
	listener := e.EventServer().NewListener(engine.ReceiveAll)

	tx := e.Begin()
	for _, name := range []string{"a", "b", "c", "d"} {
		if _, err := tx.Root().ConstructChild(name, element.NewBox()); err != nil {
			tx.End()
			fatal(err)
		}
	}
	if _, err := tx.Render(); err != nil {
		tx.End()
		fatal(err)
	}
	tx.End()

	for {
		ev, _, ok := listener.TryPop()
		if !ok {
			break
		}
		fmt.Println(styleKind(ev.Kind), ev.Path.String(), ev.Geometry.Pos)
	}
}

func fatal(err error) {
	slog.Error("scenelayoutctl: transaction failed", "err", err)
	os.Exit(1)
}

func styleKind(k engine.Kind) termenv.Style {
	label := fmt.Sprintf("%-8s", k)
	switch k {
	case engine.Add:
		return termenv.String(label).Foreground(termenv.ANSIGreen)
	case engine.Remove:
		return termenv.String(label).Foreground(termenv.ANSIRed)
	case engine.Move:
		return termenv.String(label).Foreground(termenv.ANSIBlue)
	case engine.Resize:
		return termenv.String(label).Foreground(termenv.ANSIYellow)
	case engine.Recolor:
		return termenv.String(label).Foreground(termenv.ANSICyan)
	default: // Retext
		return termenv.String(label).Foreground(termenv.ANSIMagenta)
	}
}
