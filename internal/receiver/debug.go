package receiver

import "sync/atomic"

// debugEvents controls whether suppressed events are logged.
var debugEvents atomic.Bool

// SetDebugLogging enables/disables verbose per-event debug logs.
func SetDebugLogging(enabled bool) {
	debugEvents.Store(enabled)
}

// debugEnabled reports whether per-event debug logs are enabled.
func debugEnabled() bool {
	return debugEvents.Load()
}
