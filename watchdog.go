//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// watchdog cancels its context when it is not kicked within timeout.
// It is armed before the request is sent and kicked after every read,
// so it bounds each blocking phase but not the whole transfer.
type watchdog struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	timer   *time.Timer
	timeout time.Duration
}

func newWatchdog(parent context.Context, timeout time.Duration) *watchdog {
	ctx, cancel := context.WithCancelCause(parent)
	wd := &watchdog{
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
	}
	if timeout > 0 {
		wd.timer = time.AfterFunc(timeout, func() {
			cancel(os.ErrDeadlineExceeded)
		})
	}
	return wd
}

func (wd *watchdog) Kick() {
	if wd.timer != nil {
		wd.timer.Reset(wd.timeout)
	}
}

// Stop releases the timer and the context.
func (wd *watchdog) Stop() {
	if wd.timer != nil {
		wd.timer.Stop()
	}
	wd.cancel(nil)
}

// cause replaces a generic cancellation error with the reason the watchdog
// fired, if it did.
func (wd *watchdog) cause(err error) error {
	if errors.Is(context.Cause(wd.ctx), os.ErrDeadlineExceeded) {
		return fmt.Errorf("no activity for %s: %w", wd.timeout, os.ErrDeadlineExceeded)
	}
	return err
}
