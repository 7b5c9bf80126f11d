// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not run a scenario
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	var theConfiguration *Configuration
	if len(arguments) > 0 && ("demo" == arguments[0] || "d" == arguments[0]) {
		theConfiguration = demoConfiguration()
		theConfiguration.DataDirectory = os.TempDir()
		theConfiguration.Logging = logger.Configuration{
			Directory: filepath.Join(os.TempDir(), program+"-"+defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		}
		if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
			exitwithstatus.Message("%s: failed to create log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
		}
	} else {
		if 1 != len(options["config-file"]) {
			exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
		}

		// read options and parse the configuration file
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	bag, result, err := runScenario(theConfiguration, logger.New("bag"))
	if nil != err {
		log.Criticalf("scenario error: %s", err)
		exitwithstatus.Message("%s: scenario failed with error: %s", program, err)
	}
	defer bag.Destroy()

	log.Infof("allocator: %+v", avl.AllocatorStats())

	if verbose {
		bag.Print(os.Stdout, theConfiguration.Indent, nil)
	}
	if !quiet {
		if err := printJson(os.Stdout, result); nil != err {
			exitwithstatus.Message("%s: report error: %s", program, err)
		}
	}
}
