// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlreplay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"replay":          "info",
		logger.DefaultTag: "critical",
	}
)

// the operations a step may perform
const (
	opInsert   = "insert"
	opErase    = "erase"
	opContains = "contains"
)

// Step - one operation applied to the map
type Step struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   int    `gluamapper:"key" json:"key"`
	Value int    `gluamapper:"value" json:"value"`
}

func (s Step) String() string {
	if opInsert == s.Op {
		return fmt.Sprintf("%s %d → %d", s.Op, s.Key, s.Value)
	}
	return fmt.Sprintf("%s %d", s.Op, s.Key)
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Check         bool                 `gluamapper:"check" json:"check"`
	Steps         []Step               `gluamapper:"steps" json:"steps"`
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

	// the Lua table is merged into this map, so never hand out the defaults
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Check:         false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if 0 == len(options.Steps) {
		return nil, fault.ErrMissingSteps
	}
	for i := range options.Steps {
		op := strings.ToLower(strings.TrimSpace(options.Steps[i].Op))
		switch op {
		case opInsert, opErase, opContains:
			options.Steps[i].Op = op
		default:
			return nil, fmt.Errorf("step[%d]: %q: %w", i, options.Steps[i].Op, fault.ErrInvalidOperation)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name i.e. must
	// not contain path seperator
	if !util.IsPlainFileName(options.Logging.File) {
		return nil, fault.ErrNotPlainFileName
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
