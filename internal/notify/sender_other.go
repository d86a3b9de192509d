//go:build !darwin && !linux && !windows

package notify

// newDarwinSender returns a no-op sender on unsupported platforms
func newDarwinSender() Sender {
	return &noopSender{}
}

// newLinuxSender returns a no-op sender on unsupported platforms
func newLinuxSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on unsupported platforms
func newWindowsSender() Sender {
	return &noopSender{}
}
