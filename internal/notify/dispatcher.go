package notify

import (
	"context"
	"errors"
	"time"
)

// Dispatcher is the public notification surface. Both operations are
// best-effort and non-throwing: no failure ever reaches the caller. A
// caller may await completion of the attempt, never of user interaction
// with the notification.
type Dispatcher struct {
	strategy Strategy
	enabled  bool
	logf     func(format string, args ...any)
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithEnabled toggles the master switch. A disabled dispatcher silently
// no-ops on every call.
func WithEnabled(enabled bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.enabled = enabled
	}
}

// WithLogf overrides the warning sink (used by tests)
func WithLogf(logf func(format string, args ...any)) DispatcherOption {
	return func(d *Dispatcher) {
		if logf != nil {
			d.logf = logf
		}
	}
}

// NewDispatcher creates a dispatcher delivering through strategy
func NewDispatcher(strategy Strategy, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		strategy: strategy,
		enabled:  true,
		logf:     warnf,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Strategy returns the injected delivery strategy
func (d *Dispatcher) Strategy() Strategy {
	return d.strategy
}

// SendLocalNotification displays a notification with the given title and
// body right away. Failures are logged as warnings and swallowed.
func (d *Dispatcher) SendLocalNotification(ctx context.Context, title, body string) {
	d.attempt("send", func() error {
		return d.strategy.Send(ctx, NewNotification(title, body))
	})
}

// ScheduleNotification displays a notification once after delay elapses.
// A negative delay is clamped to zero. No cancellation handle is returned.
// Failures are logged as warnings and swallowed.
func (d *Dispatcher) ScheduleNotification(ctx context.Context, title, body string, delay time.Duration) {
	if delay < 0 {
		d.logf("negative delay %v clamped to 0", delay)
		delay = 0
	}
	d.attempt("schedule", func() error {
		return d.strategy.Schedule(ctx, NewNotification(title, body), delay)
	})
}

// attempt runs one delivery attempt under the non-throwing contract:
// sentinel failures become warnings, unexpected errors become warnings,
// and a panicking backend is recovered into a warning.
func (d *Dispatcher) attempt(op string, fn func() error) {
	if d == nil || d.strategy == nil || !d.enabled {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			d.logf("%s: notification backend panicked: %v", op, r)
		}
	}()

	err := fn()
	switch {
	case err == nil:
	case errors.Is(err, ErrUnavailable):
		d.logf("%s: %v on %s", op, ErrUnavailable, Platform())
	case errors.Is(err, ErrPermissionDenied):
		d.logf("%s: %v", op, ErrPermissionDenied)
	default:
		d.logf("%s: notification failed: %v", op, err)
	}
}
