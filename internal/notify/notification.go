package notify

import "time"

// Notification represents a single notification to deliver. It exists only
// for the duration of one send or schedule call and is never stored.
type Notification struct {
	// Title is the notification title (e.g., "nudge")
	Title string

	// Body is the notification body text
	Body string
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, body string) Notification {
	return Notification{
		Title: title,
		Body:  body,
	}
}

// TriggerKind identifies when a scheduled notification should fire
type TriggerKind string

const (
	// TriggerImmediate fires the notification right away
	TriggerImmediate TriggerKind = "immediate"
	// TriggerTimeInterval fires once after Interval elapses (non-repeating)
	TriggerTimeInterval TriggerKind = "time_interval"
)

// Trigger describes when a scheduled notification should fire
type Trigger struct {
	Kind     TriggerKind
	Interval time.Duration
}

// PermissionStatus is the platform-owned notification permission state.
// The module only reads it and triggers the platform's request flow when
// the state is undetermined.
type PermissionStatus string

const (
	// PermissionUndetermined means the user has not yet been asked
	PermissionUndetermined PermissionStatus = "undetermined"
	// PermissionGranted means notifications may be displayed
	PermissionGranted PermissionStatus = "granted"
	// PermissionDenied means the platform refuses to display notifications
	PermissionDenied PermissionStatus = "denied"
)

// HandlerConfig holds the presentation options registered once per process
// for notifications received while the app is foregrounded.
type HandlerConfig struct {
	// PlaySound plays an audible alert alongside the visual notification
	PlaySound bool

	// SetBadge updates the app badge count (unsupported on most desktops)
	SetBadge bool

	// ShowBanner shows the transient on-screen banner
	ShowBanner bool

	// ShowInList keeps the notification in the notification list/center
	ShowInList bool
}

// DefaultHandlerConfig returns the default presentation options:
// sound on, badge off, banner on, list on.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		PlaySound:  true,
		SetBadge:   false,
		ShowBanner: true,
		ShowInList: true,
	}
}
