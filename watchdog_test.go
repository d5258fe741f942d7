//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package speedtest

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchdogFires(t *testing.T) {
	wd := newWatchdog(context.Background(), 20*time.Millisecond)
	defer wd.Stop()

	select {
	case <-wd.ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watchdog did not fire")
	}
	require.ErrorIs(t, wd.cause(context.Canceled), os.ErrDeadlineExceeded)
}

func TestWatchdogKick(t *testing.T) {
	wd := newWatchdog(context.Background(), 200*time.Millisecond)
	defer wd.Stop()

	for i := 0; i < 5; i++ {
		time.Sleep(50 * time.Millisecond)
		wd.Kick()
	}
	require.NoError(t, wd.ctx.Err())

	other := errors.New("other")
	require.Equal(t, other, wd.cause(other))
}

func TestWatchdogStop(t *testing.T) {
	wd := newWatchdog(context.Background(), time.Hour)
	wd.Stop()
	require.ErrorIs(t, wd.ctx.Err(), context.Canceled)
	require.Equal(t, context.Canceled, wd.cause(context.Canceled))
}
