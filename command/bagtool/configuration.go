// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/configuration"
	"github.com/bitmark-inc/avlbag/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultOrder   = "ascending"
	defaultRemoval = "recursive"
	defaultIndent  = 4

	defaultLogDirectory = "log"
	defaultLogFile      = "bagtool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "critical"
)

// Configuration - the scenario and its environment
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Order         string               `gluamapper:"order" json:"order"`
	Removal       string               `gluamapper:"removal" json:"removal"`
	Indent        int                  `gluamapper:"indent" json:"indent"`
	Insert        []int                `gluamapper:"insert" json:"insert"`
	Remove        []int                `gluamapper:"remove" json:"remove"`
	Unbalanced    []int                `gluamapper:"unbalanced" json:"unbalanced"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Order:         defaultOrder,
		Removal:       defaultRemoval,
		Indent:        defaultIndent,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{ // fresh map for each read
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// check the scenario settings, these are the same for the built-in demo
func (options *Configuration) validate() error {
	if _, err := avl.NamedOrder[int](options.Order); nil != err {
		return err
	}
	if _, err := avl.ParseRemoval(options.Removal); nil != err {
		return err
	}
	if options.Indent < 0 {
		return fault.ErrInvalidIndent
	}
	return nil
}

// prepend the directory to a relative path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
