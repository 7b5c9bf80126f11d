// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup command handler
//
// commands that need neither the configuration file nor a bag,
// returns false if main should carry on and run a scenario
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "demo", "d":
		return false // run the built-in scenario

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  demo                       (d)      - insert: 2 3 8 1 9 then remove: 8\n")
		fmt.Printf("                                        no configuration file is needed\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - run the scenario from the configuration file\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("options:\n\n")
		fmt.Printf("  --verbose                  (-v)     - also print the tree on its side\n")
		fmt.Printf("  --quiet                    (-q)     - do not print the JSON report\n")
		fmt.Printf("\n")
		return true
	}
}
