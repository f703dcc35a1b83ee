package heap

import (
	"fmt"
	"strconv"
	"unsafe"
)

// The event log records every allocator decision for post-mortem analysis.
// It must stay safe to call while the allocator is interposed on a host
// runtime, so records are formatted into a fixed buffer and written with a
// single raw write. Nothing on this path calls Malloc or enters buffered
// formatted I/O.

const (
	logLineMax = 256
	logTrunc   = logLineMax - 2 // keeps room for the trailing newline
)

// InitLog opens (creating and truncating) the event log at path and routes
// every subsequent allocator event to it. An empty path disables logging,
// as does CloseLog. Re-initializing closes the previous descriptor first.
func InitLog(path string) error {
	CloseLog()
	if path == "" {
		return nil
	}
	if err := logOpen(path); err != nil {
		return fmt.Errorf("%w: %v", ErrLogOpen, err)
	}
	return nil
}

// CloseLog closes the event log. Log calls become no-ops.
func CloseLog() {
	logClose()
}

// line accumulates one log record in a fixed buffer. Appenders stop
// writing silently once the record reaches the truncation limit.
type line struct {
	buf [logLineMax]byte
	n   int
}

func (l *line) str(s string) {
	l.n += copy(l.buf[l.n:logTrunc], s)
}

func (l *line) uint(v uint64) {
	if logTrunc-l.n < 20 {
		return
	}
	out := strconv.AppendUint(l.buf[l.n:l.n:logTrunc], v, 10)
	l.n += len(out)
}

func (l *line) ptr(p unsafe.Pointer) {
	if logTrunc-l.n < 19 {
		return
	}
	l.str("0x")
	out := strconv.AppendUint(l.buf[l.n:l.n:logTrunc], uint64(uintptr(p)), 16)
	l.n += len(out)
}

// emit terminates the record and writes it with one raw write.
func (l *line) emit() {
	l.buf[l.n] = '\n'
	logWrite(l.buf[:l.n+1])
}

func logMalloc(requested int, aligned uintptr, p unsafe.Pointer) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("malloc: requested ")
	l.uint(uint64(requested))
	l.str(" aligned ")
	l.uint(uint64(aligned))
	l.str(" ptr ")
	l.ptr(p)
	l.emit()
}

func logFree(p unsafe.Pointer, size uintptr) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("free: ptr ")
	l.ptr(p)
	l.str(" size ")
	l.uint(uint64(size))
	l.emit()
}

func logCalloc(total int, p unsafe.Pointer) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("calloc: zeroed ")
	l.uint(uint64(total))
	l.str(" bytes ptr ")
	l.ptr(p)
	l.emit()
}

// logRealloc records an in-place realloc outcome, kind is "shrunk" or
// "expanded".
func logRealloc(kind string, p unsafe.Pointer, size uintptr) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("realloc: ")
	l.str(kind)
	l.str(" ptr ")
	l.ptr(p)
	l.str(" to ")
	l.uint(uint64(size))
	l.emit()
}

func logMoved(from, to unsafe.Pointer, size uintptr) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("realloc: moved ptr ")
	l.ptr(from)
	l.str(" to ")
	l.ptr(to)
	l.str(" size ")
	l.uint(uint64(size))
	l.emit()
}

// logInvalid records a pointer rejected by validation, op is "free" or
// "realloc".
func logInvalid(op string, p unsafe.Pointer) {
	if !logEnabled() {
		return
	}
	var l line
	l.str(op)
	l.str(": invalid pointer ")
	l.ptr(p)
	l.emit()
}

func logExtend(total uintptr, p unsafe.Pointer) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("extend_heap: mapped ")
	l.uint(uint64(total))
	l.str(" bytes ptr ")
	l.ptr(p)
	l.emit()
}

func logExtendFail() {
	if !logEnabled() {
		return
	}
	var l line
	l.str("extend_heap: mmap failed")
	l.emit()
}

func logSplit(p unsafe.Pointer, size, fragSize uintptr) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("split_block: ptr ")
	l.ptr(p)
	l.str(" into ")
	l.uint(uint64(size))
	l.str(" and ")
	l.uint(uint64(fragSize))
	l.emit()
}

// logCoalesce records a merge, dir is "prev" or "next"; p and size
// describe the surviving block.
func logCoalesce(dir string, p unsafe.Pointer, size uintptr) {
	if !logEnabled() {
		return
	}
	var l line
	l.str("coalesce: absorbed ")
	l.str(dir)
	l.str(" into ptr ")
	l.ptr(p)
	l.str(" size ")
	l.uint(uint64(size))
	l.emit()
}

func logReset() {
	if !logEnabled() {
		return
	}
	var l line
	l.str("reset: heap abandoned for testing")
	l.emit()
}
