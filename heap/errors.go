package heap

import "errors"

var (
	// ErrLogOpen indicates the event log file could not be opened.
	ErrLogOpen = errors.New("heap: event log open failed")
)
