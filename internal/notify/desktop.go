package notify

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DesktopStrategy delivers through the OS notification center. The native
// capability is resolved lazily, at most once per process, and the handler
// registration runs at most once regardless of how many send or schedule
// calls occur.
type DesktopStrategy struct {
	handler   HandlerConfig
	resolver  CapabilityResolver
	soundFile string
	quietInCI bool

	resolveOnce sync.Once
	capability  Capability

	registerOnce sync.Once
}

// DesktopOption configures a DesktopStrategy
type DesktopOption func(*DesktopStrategy)

// WithCapabilityResolver overrides how the native capability is resolved.
// Used by tests and by callers that bring their own backend.
func WithCapabilityResolver(r CapabilityResolver) DesktopOption {
	return func(s *DesktopStrategy) {
		s.resolver = r
	}
}

// WithQuietInCI suppresses desktop notifications in CI and non-interactive
// sessions (default true).
func WithQuietInCI(quiet bool) DesktopOption {
	return func(s *DesktopStrategy) {
		s.quietInCI = quiet
	}
}

// WithSoundFile sets a custom notification sound file
func WithSoundFile(path string) DesktopOption {
	return func(s *DesktopStrategy) {
		s.soundFile = path
	}
}

// NewDesktopStrategy creates a desktop delivery strategy with the given
// foreground presentation options.
func NewDesktopStrategy(handler HandlerConfig, opts ...DesktopOption) *DesktopStrategy {
	s := &DesktopStrategy{
		handler:   handler,
		quietInCI: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy
func (s *DesktopStrategy) Name() string {
	return "desktop"
}

// Send displays a notification immediately
func (s *DesktopStrategy) Send(ctx context.Context, n Notification) error {
	return s.schedule(ctx, n, Trigger{Kind: TriggerImmediate})
}

// Schedule displays a notification once after delay elapses
func (s *DesktopStrategy) Schedule(ctx context.Context, n Notification, delay time.Duration) error {
	return s.schedule(ctx, n, Trigger{Kind: TriggerTimeInterval, Interval: delay})
}

func (s *DesktopStrategy) schedule(ctx context.Context, n Notification, trig Trigger) error {
	// Desktop notifications are pointless without a user at the screen.
	// Suppression is a silent skip, not a failure.
	if s.quietInCI && !interactiveSession() {
		return nil
	}

	capability := s.resolve()
	if capability == nil {
		return ErrUnavailable
	}

	s.registerOnce.Do(func() {
		capability.SetNotificationHandler(s.handler)
	})

	status, err := capability.RequestPermissions(ctx)
	if err != nil {
		return fmt.Errorf("request notification permission: %w", err)
	}
	if status != PermissionGranted {
		return ErrPermissionDenied
	}

	if err := capability.ScheduleNotification(ctx, n, trig); err != nil {
		return fmt.Errorf("schedule notification: %w", err)
	}
	return nil
}

// resolve returns the cached capability, resolving it on first use.
// A nil capability means none is available; the result holds for the
// process lifetime and resets only on restart.
func (s *DesktopStrategy) resolve() Capability {
	s.resolveOnce.Do(func() {
		if s.resolver != nil {
			s.capability = s.resolver()
			return
		}
		s.capability = ResolveDesktopCapability(s.soundFile)
	})
	return s.capability
}

// Check reports delivery readiness without displaying anything
func (s *DesktopStrategy) Check(ctx context.Context) CheckResult {
	result := CheckResult{Strategy: s.Name(), Permission: PermissionUndetermined}

	capability := s.resolve()
	if capability == nil {
		result.Detail = fmt.Sprintf("no notification capability on %s", Platform())
		return result
	}
	result.Available = true

	status, err := capability.RequestPermissions(ctx)
	if err != nil {
		result.Detail = fmt.Sprintf("permission probe failed: %v", err)
		return result
	}
	result.Permission = status
	if status != PermissionGranted {
		result.Detail = "notification permission not granted"
	}
	return result
}
