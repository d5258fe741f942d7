//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"fmt"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count in the smallest unit that keeps the value
// below 1024, using a 1024 divisor and two decimals. Values past the GB
// range are always shown in TB.
func FormatSize(bytes float64) string {
	for _, unit := range sizeUnits {
		if bytes < 1024 {
			return fmt.Sprintf("%.2f %s", bytes, unit)
		}
		bytes /= 1024
	}
	return fmt.Sprintf("%.2f TB", bytes)
}

// FormatSpeed renders a byte rate, see FormatSize.
func FormatSpeed(bytesPerSecond float64) string {
	return FormatSize(bytesPerSecond) + "/s"
}

// FormatSeconds renders a duration in seconds with four decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4f seconds", d.Seconds())
}
