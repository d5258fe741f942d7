//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionCounters(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSession("http://example.com/", start)
	require.Equal(t, int64(-1), s.contentLength)

	require.False(t, s.addChunk(0, start.Add(time.Second)))
	require.False(t, s.hasFirstByte)
	require.Equal(t, int64(0), s.totalBytes)

	require.True(t, s.addChunk(10, start.Add(2*time.Second)))
	require.False(t, s.addChunk(20, start.Add(3*time.Second)))
	require.False(t, s.addChunk(0, start.Add(4*time.Second)))
	require.Equal(t, int64(30), s.totalBytes)
	require.Equal(t, 2*time.Second, s.latency())
}

func TestSessionCheckpoint(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSession("http://example.com/", start)
	s.addChunk(500, start.Add(time.Second))

	_, ok := s.checkpoint(start.Add(5*time.Second), 5*time.Second)
	require.False(t, ok)

	p, ok := s.checkpoint(start.Add(5*time.Second+time.Millisecond), 5*time.Second)
	require.True(t, ok)
	require.Equal(t, int64(500), p.Bytes)
	require.Equal(t, int64(500), p.IntervalBytes)
	require.Equal(t, start.Add(5*time.Second+time.Millisecond), s.lastReportTime)
	require.Equal(t, s.totalBytes, s.lastReportBytes)

	s.addChunk(300, start.Add(7*time.Second))
	p, ok = s.checkpoint(start.Add(11*time.Second), 5*time.Second)
	require.True(t, ok)
	require.Equal(t, int64(800), p.Bytes)
	require.Equal(t, int64(300), p.IntervalBytes)
	require.LessOrEqual(t, s.lastReportBytes, s.totalBytes)
}

func TestSessionFinish(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSession("http://example.com/", start)
	s.connected = start.Add(100 * time.Millisecond)
	r := s.finish(start.Add(time.Second), nil)
	require.Equal(t, 100*time.Millisecond, r.ConnectionTime)
	require.Equal(t, time.Second, r.TotalTime)
	require.Nil(t, r.Latency)
	require.Nil(t, r.DownloadTime)

	s.addChunk(1000, start.Add(200*time.Millisecond))
	r = s.finish(start.Add(time.Second), nil)
	require.Equal(t, 200*time.Millisecond, *r.Latency)
	require.Equal(t, 800*time.Millisecond, *r.DownloadTime)
	avg, ok := r.AverageSpeed()
	require.True(t, ok)
	require.InDelta(t, 1250.0, avg, 0.001)
}
