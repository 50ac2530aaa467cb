package transport

import (
	"sync/atomic"
)

// Counter bounds the number of connections served at once. The number of active
// connections never leaves [0, max].
type Counter struct {
	active atomic.Int64
	max    int64
}

func NewCounter(limit int64) *Counter {
	return &Counter{max: limit}
}

// TryOpen takes a seat if there's any left. No queueing is done: a caller that got false
// must refuse the connection.
func (c *Counter) TryOpen() bool {
	for {
		active := c.active.Load()
		if active >= c.max {
			return false
		}

		if c.active.CompareAndSwap(active, active+1) {
			return true
		}
	}
}

// Close releases a seat taken by TryOpen.
func (c *Counter) Close() {
	for {
		active := c.active.Load()
		if active <= 0 {
			return
		}

		if c.active.CompareAndSwap(active, active-1) {
			return
		}
	}
}

func (c *Counter) Active() int64 {
	return c.active.Load()
}

func (c *Counter) Max() int64 {
	return c.max
}
