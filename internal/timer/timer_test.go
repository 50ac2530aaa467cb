package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	// 1.5*Resolution absorbs the rare Resolution+1ms lag of the updating goroutine
	const tolerance = Resolution + Resolution/2

	for range 5 {
		require.Less(t, time.Since(Now()), tolerance)
		time.Sleep(100 * time.Millisecond)
	}
}

func TestDeadline(t *testing.T) {
	require.True(t, Deadline(0).IsZero())
	require.True(t, Deadline(-time.Second).IsZero())

	deadline := Deadline(time.Minute)
	require.WithinDuration(t, time.Now().Add(time.Minute), deadline, 2*Resolution)
}
