// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Helix Project Developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/helix-inc/helixd/configuration"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "helixd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultNearDuplicateThreshold = 10 // bits of the 64 bit fingerprint
	defaultRecordRetention        = "24h"
)

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory          string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile                string               `gluamapper:"pidfile" json:"pidfile"`
	NearDuplicateThreshold int                  `gluamapper:"near_duplicate_threshold" json:"near_duplicate_threshold"`
	RecordRetention        string               `gluamapper:"record_retention" json:"record_retention"`
	Logging                logger.Configuration `gluamapper:"logging" json:"logging"`
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

		DataDirectory:          defaultDataDirectory,
		PidFile:                "", // no PidFile by default
		NearDuplicateThreshold: defaultNearDuplicateThreshold,
		RecordRetention:        defaultRecordRetention,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if "" == options.DataDirectory {
		return nil, errors.New("data_directory cannot be empty")
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// relative log directory is resolved against the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	if options.NearDuplicateThreshold < 0 || options.NearDuplicateThreshold > 64 {
		return nil, errors.New("near_duplicate_threshold must be in the range 0..64")
	}

	if _, err := time.ParseDuration(options.RecordRetention); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
