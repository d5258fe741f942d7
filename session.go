//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import "time"

// session holds the timestamps and counters of a single run.
// It is owned by the goroutine running the test and is never shared.
type session struct {
	url           string
	start         time.Time
	connected     time.Time
	firstByte     time.Time
	hasFirstByte  bool
	totalBytes    int64
	contentLength int64

	lastReportTime  time.Time
	lastReportBytes int64
}

func newSession(url string, start time.Time) *session {
	return &session{
		url:            url,
		start:          start,
		contentLength:  -1,
		lastReportTime: start,
	}
}

// addChunk accounts n bytes received at now. It returns true if this was
// the first non-empty chunk. Empty chunks are ignored.
func (s *session) addChunk(n int, now time.Time) (first bool) {
	if n <= 0 {
		return false
	}
	if !s.hasFirstByte {
		s.firstByte = now
		s.hasFirstByte = true
		first = true
	}
	s.totalBytes += int64(n)
	return first
}

// latency is the time to first byte, valid only if hasFirstByte.
func (s *session) latency() time.Duration {
	return s.firstByte.Sub(s.start)
}

// checkpoint returns a progress event and moves the report checkpoint to
// now if more than interval elapsed since the previous one.
func (s *session) checkpoint(now time.Time, interval time.Duration) (Progress, bool) {
	elapsed := now.Sub(s.lastReportTime)
	if elapsed <= interval {
		return Progress{}, false
	}
	p := Progress{
		Elapsed:       now.Sub(s.start),
		Bytes:         s.totalBytes,
		IntervalBytes: s.totalBytes - s.lastReportBytes,
		Interval:      elapsed,
	}
	s.lastReportTime = now
	s.lastReportBytes = s.totalBytes
	return p, true
}

// finish builds the report for a transfer that ended at end.
func (s *session) finish(end time.Time, progress []Progress) *Report {
	r := &Report{
		URL:            s.url,
		ContentLength:  s.contentLength,
		TotalTime:      end.Sub(s.start),
		ConnectionTime: s.connected.Sub(s.start),
		Bytes:          s.totalBytes,
		Progress:       progress,
	}
	if s.hasFirstByte {
		latency := s.latency()
		download := end.Sub(s.firstByte)
		r.Latency = &latency
		r.DownloadTime = &download
	}
	return r
}
