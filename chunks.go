//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import "io"

// chunkSource turns a body reader into a single-pass sequence of chunks,
// one per Read call. A chunk may be empty (keep-alive). The returned slice
// is only valid until the next call to Next.
type chunkSource struct {
	in      io.Reader
	buff    []byte
	pending error
	onRead  func()
}

func newChunkSource(in io.Reader, size int, onRead func()) *chunkSource {
	return &chunkSource{
		in:     in,
		buff:   make([]byte, size),
		onRead: onRead,
	}
}

// Next returns the next chunk, or io.EOF when the body is exhausted.
// Data returned together with an error is delivered first; the error is
// returned on the following call.
func (c *chunkSource) Next() ([]byte, error) {
	if c.pending != nil {
		return nil, c.pending
	}
	n, err := c.in.Read(c.buff)
	if err == nil || n > 0 {
		if c.onRead != nil {
			c.onRead()
		}
	}
	if err != nil {
		c.pending = err
		if n == 0 {
			return nil, err
		}
	}
	return c.buff[:n], nil
}
