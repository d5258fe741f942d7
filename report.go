//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"time"

	"github.com/rs/zerolog"
)

// Progress is a periodic report emitted while the body is streamed.
type Progress struct {
	// Elapsed is the time since the start of the test.
	Elapsed time.Duration
	// Bytes is the cumulative number of bytes downloaded.
	Bytes int64
	// IntervalBytes is the number of bytes received since the previous report.
	IntervalBytes int64
	// Interval is the time since the previous report.
	Interval time.Duration
}

// Speed returns the instantaneous speed over the interval in bytes per second.
func (p Progress) Speed() float64 {
	if p.Interval <= 0 {
		return 0
	}
	return float64(p.IntervalBytes) / p.Interval.Seconds()
}

// Report is the result of a completed speed test.
type Report struct {
	URL string
	// ContentLength is the size declared by the server, or -1 if unknown.
	// It is informational only.
	ContentLength int64
	// TotalTime is the time from before the request to the end of the body.
	TotalTime time.Duration
	// ConnectionTime is the time until the response headers were received.
	ConnectionTime time.Duration
	// Latency is the time to the first non-empty chunk, nil if the body
	// was empty.
	Latency *time.Duration
	// DownloadTime is the time from the first byte to the end of the body,
	// nil if the body was empty.
	DownloadTime *time.Duration
	// Bytes is the number of body bytes received.
	Bytes int64
	// Progress contains every progress report emitted during the test.
	Progress []Progress
}

// AverageSpeed returns Bytes over DownloadTime in bytes per second.
// The second value is false if no byte was received or the download time
// is zero.
func (r *Report) AverageSpeed() (float64, bool) {
	if r.DownloadTime == nil || *r.DownloadTime <= 0 {
		return 0, false
	}
	return float64(r.Bytes) / r.DownloadTime.Seconds(), true
}

// Throughput returns Bytes over TotalTime in bytes per second.
// The second value is false if the total time is zero.
func (r *Report) Throughput() (float64, bool) {
	if r.TotalTime <= 0 {
		return 0, false
	}
	return float64(r.Bytes) / r.TotalTime.Seconds(), true
}

const unavailable = "unavailable"

func speedOrUnavailable(v float64, ok bool) string {
	if !ok {
		return unavailable
	}
	return FormatSpeed(v)
}

// Log writes the final report block to logger, one line per field.
func (r *Report) Log(logger *zerolog.Logger) {
	logger.Info().Msg("===== Download Test Results =====")
	logger.Info().Msgf("URL: %s", r.URL)
	logger.Info().Msgf("Total time: %s", FormatSeconds(r.TotalTime))
	logger.Info().Msgf("Connection time: %s", FormatSeconds(r.ConnectionTime))
	if r.Latency != nil {
		logger.Info().Msgf("Latency (TTFB): %s", FormatSeconds(*r.Latency))
	}
	if r.DownloadTime != nil {
		logger.Info().Msgf("Download time: %s", FormatSeconds(*r.DownloadTime))
	} else {
		logger.Info().Msgf("Download time: %s", unavailable)
	}
	logger.Info().Int64("bytes", r.Bytes).Msgf("Downloaded size: %s", FormatSize(float64(r.Bytes)))
	avg, ok := r.AverageSpeed()
	logger.Info().Msgf("Average download speed: %s", speedOrUnavailable(avg, ok))
	tp, ok := r.Throughput()
	logger.Info().Msgf("Throughput: %s", speedOrUnavailable(tp, ok))
	logger.Info().Msg("================================")
}
