// Package testutil provides test doubles shared across packages.
package testutil

import (
	"sync"

	"github.com/frudas24/inputreceiver/internal/receiver"
)

// FakeSink implements receiver.Sink and records appended lines for tests.
type FakeSink struct {
	mu    sync.Mutex
	Lines []string
}

// Ensure FakeSink implements the interface.
var _ receiver.Sink = (*FakeSink)(nil)

// Append records a line.
func (f *FakeSink) Append(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Lines = append(f.Lines, line)
}

// Snapshot returns a copy of the recorded lines.
func (f *FakeSink) Snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Lines))
	copy(out, f.Lines)
	return out
}
