//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Command speedtest downloads the resource at DOWNLOAD_URL once and reports
// connection time, latency and transfer speed. Settings are read from the
// environment, optionally loaded from a .env file in the working directory.
package main

import (
	"errors"
	"os"

	"go.bug.st/speedtest"
)

const (
	exitOK = iota
	exitFailure
	exitConfiguration
	exitHTTPStatus
	exitTransfer
)

func main() {
	os.Exit(run())
}

func run() int {
	loadErr := speedtest.LoadSettings()
	settings, err := speedtest.SettingsFromEnv()
	log := speedtest.NewConsoleLogger(settings.LogLevel, os.Stdout)
	if loadErr != nil {
		log.Error().Err(loadErr).Msg("Error loading settings file")
		return exitConfiguration
	}
	if err != nil {
		log.Error().Err(err).Msgf("Error: %s not specified in .env file", speedtest.URLEnv)
		return exitConfiguration
	}

	config := speedtest.GetDefaultConfig()
	config.Logger = log
	if _, err := speedtest.RunWithConfig(settings.URL, config); err != nil {
		log.Error().Err(err).Msg("Error during download test")
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var configErr *speedtest.ConfigurationError
	var statusErr *speedtest.HTTPStatusError
	var transferErr *speedtest.TransferError
	switch {
	case errors.As(err, &configErr):
		return exitConfiguration
	case errors.As(err, &statusErr):
		return exitHTTPStatus
	case errors.As(err, &transferErr):
		return exitTransfer
	default:
		return exitFailure
	}
}
