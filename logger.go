//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped logger writing to w at the given level
// ("debug", "info", "warn" or "error"; anything else means info).
func NewLogger(level string, w io.Writer) *zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &logger
}

// NewConsoleLogger is like NewLogger but renders human readable lines.
func NewConsoleLogger(level string, w io.Writer) *zerolog.Logger {
	return NewLogger(level, zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"})
}
