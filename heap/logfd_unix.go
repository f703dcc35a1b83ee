//go:build unix

package heap

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Single process-wide descriptor, replaced atomically by open/close.
// -1 means logging is disabled.
var logFD atomic.Int32

func init() {
	logFD.Store(-1)
}

func logOpen(path string) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	logFD.Store(int32(fd))
	return nil
}

func logClose() {
	if fd := logFD.Swap(-1); fd != -1 {
		unix.Close(int(fd))
	}
}

func logWrite(b []byte) {
	if fd := logFD.Load(); fd != -1 {
		unix.Write(int(fd), b)
	}
}

func logEnabled() bool {
	return logFD.Load() != -1
}
