package notify

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Capability is the native notification surface the desktop strategy talks
// to. It mirrors what OS notification centers expose: a permission request
// flow, a one-time handler registration for foreground presentation, and a
// trigger-based schedule call covering both immediate and delayed delivery.
type Capability interface {
	// RequestPermissions reads the current permission state, triggering the
	// platform's request flow when it is undetermined.
	RequestPermissions(ctx context.Context) (PermissionStatus, error)

	// SetNotificationHandler registers foreground presentation options.
	// Re-registration overwrites the same configuration and is harmless.
	SetNotificationHandler(cfg HandlerConfig)

	// ScheduleNotification issues a schedule request. TriggerImmediate
	// displays the notification now; TriggerTimeInterval displays it once
	// after the trigger interval.
	ScheduleNotification(ctx context.Context, n Notification, trig Trigger) error
}

// CapabilityResolver resolves the native capability for the current
// runtime. A nil result means no capability is available on this platform.
// Resolution runs at most once per process; the result is cached for the
// process lifetime and resets only on restart.
type CapabilityResolver func() Capability

// ResolveDesktopCapability is the default resolver. It prefers the
// platform's native tools and falls back to beeep when they are missing.
func ResolveDesktopCapability(soundFile string) Capability {
	sender := NewSender()
	if sender.VisualAvailable() {
		return newSenderCapability(sender, soundFile)
	}
	if beeepSupported() {
		return newBeeepCapability()
	}
	return nil
}

// beeepSupported reports whether the beeep fallback can serve this OS
func beeepSupported() bool {
	switch runtime.GOOS {
	case "darwin", "linux", "windows", "freebsd", "openbsd", "netbsd":
		return true
	default:
		return false
	}
}

// senderCapability adapts a platform Sender to the Capability surface.
type senderCapability struct {
	mu        sync.Mutex
	sender    Sender
	handler   HandlerConfig
	soundFile string
}

func newSenderCapability(sender Sender, soundFile string) *senderCapability {
	return &senderCapability{
		sender:    sender,
		handler:   DefaultHandlerConfig(),
		soundFile: soundFile,
	}
}

// RequestPermissions probes tool and display availability. Desktop
// notification daemons have no interactive prompt to suspend on, so the
// probe resolves directly to granted or denied.
func (c *senderCapability) RequestPermissions(_ context.Context) (PermissionStatus, error) {
	if c.sender.VisualAvailable() {
		return PermissionGranted, nil
	}
	return PermissionDenied, nil
}

func (c *senderCapability) SetNotificationHandler(cfg HandlerConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = cfg
}

func (c *senderCapability) ScheduleNotification(ctx context.Context, n Notification, trig Trigger) error {
	switch trig.Kind {
	case TriggerImmediate:
		return c.deliver(n)
	case TriggerTimeInterval:
		time.AfterFunc(trig.Interval, func() {
			if err := c.deliver(n); err != nil {
				warnf("delayed notification failed: %v", err)
			}
		})
		return nil
	default:
		return fmt.Errorf("unsupported trigger kind %q", trig.Kind)
	}
}

func (c *senderCapability) deliver(n Notification) error {
	c.mu.Lock()
	handler := c.handler
	soundFile := c.soundFile
	c.mu.Unlock()

	if handler.ShowBanner || handler.ShowInList {
		if err := c.sender.SendVisual(n); err != nil {
			return err
		}
	}
	if handler.PlaySound && c.sender.SoundAvailable() {
		// Sound failures never mask a delivered visual notification
		_ = c.sender.SendSound(soundFile)
	}
	return nil
}
