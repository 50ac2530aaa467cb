//go:build unix

package transport

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// control enables SO_REUSEADDR, so a restarted server doesn't fail to bind while the old
// sockets are still in TIME_WAIT.
func control(_, _ string, conn syscall.RawConn) error {
	var sockErr error

	err := conn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}

	return sockErr
}
