package notify

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors making up the failure taxonomy. Strategies return these;
// the dispatcher is the only layer that logs and swallows them.
var (
	// ErrUnavailable means no notification capability exists on this platform
	ErrUnavailable = errors.New("notification capability unavailable")

	// ErrPermissionDenied means the platform refused notification permission
	ErrPermissionDenied = errors.New("notification permission not granted")
)

// Strategy is a platform delivery strategy. One implementation exists per
// runtime context (desktop, push); the caller selects one at startup and
// injects it into the Dispatcher.
type Strategy interface {
	// Name identifies the strategy for diagnostics ("desktop", "push")
	Name() string

	// Send displays a notification immediately
	Send(ctx context.Context, n Notification) error

	// Schedule displays a notification once after delay elapses.
	// No cancellation handle is returned; an armed schedule cannot be revoked.
	Schedule(ctx context.Context, n Notification, delay time.Duration) error

	// Check reports whether the strategy can currently deliver, for the
	// doctor command. It must not display anything.
	Check(ctx context.Context) CheckResult
}

// CheckResult is the outcome of a non-delivering strategy self-check
type CheckResult struct {
	Strategy   string
	Available  bool
	Permission PermissionStatus
	Detail     string
}
