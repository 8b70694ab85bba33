// Package clock provides context-aware waiting.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return WaitWithSignal(ctx, d, nil)
}

// WaitWithSignal waits for d, a value on signal, or ctx. A nil signal never fires.
// Only ctx ends the wait with an error.
func WaitWithSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
