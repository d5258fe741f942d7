//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes float64
		want  string
	}{
		{0, "0.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{math.Pow(1024, 3), "1.00 GB"},
		{math.Pow(1024, 4), "1.00 TB"},
		{math.Pow(1024, 5), "1024.00 TB"},
		{3 * math.Pow(1024, 6), "3145728.00 TB"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, FormatSize(test.bytes))
	}
}

func TestFormatSizeSmallestUnit(t *testing.T) {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	unitIndex := func(s string) int {
		for i, u := range units {
			if strings.HasSuffix(s, " "+u) {
				return i
			}
		}
		return -1
	}
	prev := 0
	for v := 1.0; v < math.Pow(1024, 6); v *= 3.7 {
		s := FormatSize(v)
		idx := unitIndex(s)
		require.GreaterOrEqual(t, idx, prev, s)
		scaled := v / math.Pow(1024, float64(idx))
		if idx < len(units)-1 {
			require.Less(t, scaled, 1024.0, s)
		}
		if idx > 0 {
			require.GreaterOrEqual(t, scaled, 1.0, s)
		}
		prev = idx
	}
}

func TestFormatSpeed(t *testing.T) {
	require.Equal(t, "512.00 KB/s", FormatSpeed(524288))
	require.Equal(t, "0.00 B/s", FormatSpeed(0))
}

func TestFormatSeconds(t *testing.T) {
	require.Equal(t, "2.0000 seconds", FormatSeconds(2*time.Second))
	require.Equal(t, "0.1235 seconds", FormatSeconds(123456789*time.Nanosecond))
}
