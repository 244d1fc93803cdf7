//go:build !windows

package winhost

// Host is a placeholder host for non-Windows builds.
type Host struct{}

// New returns a non-functional host on non-Windows platforms.
func New(Options) (*Host, error) {
	return &Host{}, ErrUnsupported
}

// Run returns ErrUnsupported.
func (h *Host) Run(Handler) error {
	return ErrUnsupported
}

// Append discards the line.
func (h *Host) Append(string) {}

// SyncShowMouseMove does nothing.
func (h *Host) SyncShowMouseMove(bool) {}

// Close returns ErrUnsupported.
func (h *Host) Close() error {
	return ErrUnsupported
}
