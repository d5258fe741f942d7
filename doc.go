//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package speedtest measures a single streamed HTTP download: time to
// response headers, time to first byte, periodic interval speed, average
// download speed and overall throughput.
//
// The body is consumed chunk by chunk and discarded, so the size of the
// resource does not affect memory usage.
package speedtest
