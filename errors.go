//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import "fmt"

// ConfigurationError is returned when a required setting is missing or
// unreadable. No network activity happens when it is returned.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading %s: %s", e.Key, e.Err)
	}
	return fmt.Sprintf("%s not specified", e.Key)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned when the server answers with a non-2xx
// status code. The response body is not consumed.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP status %d", e.StatusCode)
}

// TransferError wraps any failure while connecting or streaming the body:
// DNS resolution, connection refused or reset, TLS, timeouts and truncated
// bodies.
type TransferError struct {
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("during download test: %s", e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
