package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// beeepCapability is the fallback Capability used when the platform's own
// notification tools are not installed. beeep talks to the notification
// subsystem directly (dbus on Linux, the toast API on Windows) and handles
// permissions internally.
type beeepCapability struct {
	mu      sync.Mutex
	handler HandlerConfig
}

func newBeeepCapability() *beeepCapability {
	return &beeepCapability{handler: DefaultHandlerConfig()}
}

// RequestPermissions always reports granted; beeep surfaces permission
// problems as send-time errors instead.
func (c *beeepCapability) RequestPermissions(_ context.Context) (PermissionStatus, error) {
	return PermissionGranted, nil
}

func (c *beeepCapability) SetNotificationHandler(cfg HandlerConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = cfg
}

func (c *beeepCapability) ScheduleNotification(ctx context.Context, n Notification, trig Trigger) error {
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

func (c *beeepCapability) deliver(n Notification) error {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()

	if handler.ShowBanner || handler.ShowInList {
		if err := beeep.Notify(n.Title, n.Body, ""); err != nil {
			return err
		}
	}
	if handler.PlaySound {
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}
	return nil
}
