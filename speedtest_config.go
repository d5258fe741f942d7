//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds connection setup, the wait for response headers
	// and every single body read.
	DefaultTimeout = 30 * time.Second
	// DefaultChunkSize is the read buffer size used to consume the body.
	DefaultChunkSize = 8192
	// DefaultReportInterval is the minimum time between two progress lines.
	DefaultReportInterval = 5 * time.Second

	// URLEnv is the environment variable holding the URL to test.
	URLEnv = "DOWNLOAD_URL"
	// LogLevelEnv is the environment variable holding the log level.
	LogLevelEnv = "LOG_LEVEL"
)

// Clock returns the current time. Only differences between two readings
// are used, so any monotonic source will do.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config contains the configuration for a speed test
type Config struct {
	// HttpClient to use to perform the HTTP request. If nil a client with
	// Timeout applied to dial, TLS handshake and response headers is used.
	HttpClient *http.Client
	// Timeout is the maximum time to wait for the connection, the response
	// headers or any single read of the body. If set to 0, DefaultTimeout is used.
	Timeout time.Duration
	// ChunkSize is the size of the read buffer. If set to 0, DefaultChunkSize is used.
	ChunkSize int
	// ReportInterval is the minimum time between progress reports.
	// If set to 0, DefaultReportInterval is used.
	ReportInterval time.Duration
	// ExtraHeaders to add to the HTTP request.
	ExtraHeaders map[string]string
	// AcceptFunc is an optional function that will be called once the
	// response headers are received, before reading the body.
	// If the function returns an error, the test is aborted.
	AcceptFunc func(resp *http.Response) error
	// OnProgress is an optional function called for every progress report.
	OnProgress func(p Progress)
	// Logger receives the human-readable progress and report lines.
	// If nil, nothing is logged.
	Logger *zerolog.Logger
	// Clock is the time source. If nil, the system clock is used.
	Clock Clock
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}

func (c Config) reportInterval() time.Duration {
	if c.ReportInterval <= 0 {
		return DefaultReportInterval
	}
	return c.ReportInterval
}

func (c Config) clock() Clock {
	if c.Clock == nil {
		return systemClock{}
	}
	return c.Clock
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.Logger
}

// httpClient returns the configured client, or a new one without an overall
// deadline: a slow but steady transfer is allowed to run as long as it takes.
func (c Config) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	timeout := c.timeout()
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout
	return &http.Client{Transport: transport}
}

var defaultConfig Config = Config{}
var defaultConfigLock sync.Mutex

// SetDefaultConfig sets the configuration that will be used by the Run
// function.
func SetDefaultConfig(newConfig Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	defaultConfig = newConfig
}

// GetDefaultConfig returns a copy of the default configuration. The default
// configuration can be changed using the SetDefaultConfig function.
func GetDefaultConfig() Config {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()

	// shallow copy, maps and pointers are shared
	return defaultConfig
}

// EnvSettings holds the settings read from the environment.
type EnvSettings struct {
	URL      string
	LogLevel string
}

// LoadSettings loads the given settings files (".env" if none is given)
// into the process environment. Variables already set are not overridden
// and missing files are ignored.
func LoadSettings(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &ConfigurationError{Key: f, Err: err}
		}
	}
	return nil
}

// SettingsFromEnv reads the speed test settings from the environment.
// A missing DOWNLOAD_URL is reported as a *ConfigurationError.
func SettingsFromEnv() (EnvSettings, error) {
	s := EnvSettings{
		URL:      os.Getenv(URLEnv),
		LogLevel: os.Getenv(LogLevelEnv),
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.URL == "" {
		return s, &ConfigurationError{Key: URLEnv}
	}
	return s, nil
}
