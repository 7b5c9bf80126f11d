// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

type metadata struct {
	order   string
	compare avl.Comparator
	removal avl.Removal
	indent  int
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bag-cli"
	app.Usage = "sort and inspect integers held in a balanced bag"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "order, o",
			Value: "ascending",
			Usage: " element `ORDER` [ascending|descending|equal]",
		},
		cli.BoolFlag{
			Name:  "iterative, i",
			Usage: " remove without recursion",
		},
		cli.IntFlag{
			Name:  "indent",
			Value: 4,
			Usage: " spaces per tree level `COUNT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "output the elements in order",
			ArgsUsage: "ELEMENT...",
			Action:    runSort,
		},
		{
			Name:      "check",
			Usage:     "output the size and balance of the tree",
			ArgsUsage: "ELEMENT...",
			Action:    runCheck,
		},
		{
			Name:      "print",
			Usage:     "print the tree on its side",
			ArgsUsage: "ELEMENT...",
			Action:    runPrint,
		},
		{
			Name:      "remove",
			Usage:     "remove values after inserting all the elements",
			ArgsUsage: "ELEMENT...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "value, r",
					Usage: "*value to remove, may be repeated `N`",
				},
			},
			Action: runRemove,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// check the global settings once for all commands
	app.Before = func(c *cli.Context) error {

		order := c.GlobalString("order")
		compare, err := avl.NamedOrder[int](order)
		if nil != err {
			return fmt.Errorf("order: %q  error: %s", order, err)
		}

		indent := c.GlobalInt("indent")
		if indent < 0 {
			return fault.ErrInvalidIndent
		}

		removal := avl.RecursiveRemoval
		if c.GlobalBool("iterative") {
			removal = avl.IterativeRemoval
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "order: %s  removal: %s  indent: %d\n", order, removal, indent)
		}

		c.App.Metadata["config"] = &metadata{
			order:   order,
			compare: compare,
			removal: removal,
			indent:  indent,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
