package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which the clock is updated. I/O deadlines don't need
// to be any more precise.
const Resolution = 500 * time.Millisecond

var millis = new(atomic.Int64)

func init() {
	millis.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			millis.Store(time.Now().UnixMilli())
		}
	}()
}

// Now returns the coarse current time.
func Now() time.Time {
	return time.UnixMilli(millis.Load())
}

// Deadline returns the moment timeout from now. Zero timeout disables the deadline, which
// is denoted by the zero time.
func Deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}

	return Now().Add(timeout)
}
