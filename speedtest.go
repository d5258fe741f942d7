//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Run performs a speed test on the specified url using the default
// configuration.
func Run(reqURL string) (*Report, error) {
	return RunWithConfig(reqURL, GetDefaultConfig())
}

// RunWithConfig performs a speed test on the specified url using the
// given configuration.
func RunWithConfig(reqURL string, config Config) (*Report, error) {
	return RunWithConfigAndContext(context.Background(), reqURL, config)
}

// RunWithConfigAndContext performs a speed test on the specified url: the
// resource is downloaded with a single streaming GET request and discarded
// while timings and byte counters are collected.
//
// On success the returned Report is also written to the configured logger.
// Failures are returned as *ConfigurationError, *HTTPStatusError or
// *TransferError; progress already logged stays valid but no report is
// produced.
func RunWithConfigAndContext(ctx context.Context, reqURL string, config Config) (*Report, error) {
	if reqURL == "" {
		return nil, &ConfigurationError{Key: URLEnv}
	}
	log := config.logger()
	clock := config.clock()
	interval := config.reportInterval()

	log.Info().Str("url", reqURL).Msgf("Starting download test from: %s", reqURL)

	wd := newWatchdog(ctx, config.timeout())
	defer wd.Stop()

	req, err := http.NewRequestWithContext(wd.ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, &TransferError{Err: fmt.Errorf("setting up HTTP request: %w", err)}
	}
	for k, v := range config.ExtraHeaders {
		req.Header.Set(k, v)
	}

	s := newSession(reqURL, clock.Now())
	resp, err := config.httpClient().Do(req)
	if err != nil {
		return nil, &TransferError{Err: wd.cause(err)}
	}
	defer resp.Body.Close()
	s.connected = clock.Now()
	wd.Kick()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}
	if config.AcceptFunc != nil {
		if err := config.AcceptFunc(resp); err != nil {
			return nil, err
		}
	}
	if resp.ContentLength >= 0 {
		s.contentLength = resp.ContentLength
		log.Info().Int64("content_length", resp.ContentLength).
			Msgf("Content size: %s", FormatSize(float64(resp.ContentLength)))
	}

	var progress []Progress
	chunks := newChunkSource(resp.Body, config.chunkSize(), wd.Kick)
	for {
		chunk, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &TransferError{Err: wd.cause(err)}
		}
		if len(chunk) == 0 {
			// keep-alive
			continue
		}

		now := clock.Now()
		if s.addChunk(len(chunk), now) {
			log.Info().Dur("latency", s.latency()).
				Msgf("Time to first byte (latency): %.4f seconds", s.latency().Seconds())
		}
		if p, ok := s.checkpoint(now, interval); ok {
			progress = append(progress, p)
			log.Info().Int64("bytes", p.Bytes).Float64("speed_bps", p.Speed()).
				Msgf("Downloaded: %s, Current speed: %s", FormatSize(float64(p.Bytes)), FormatSpeed(p.Speed()))
			if config.OnProgress != nil {
				config.OnProgress(p)
			}
		}
	}

	report := s.finish(clock.Now(), progress)
	report.Log(log)
	return report, nil
}
