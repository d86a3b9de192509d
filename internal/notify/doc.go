// Package notify provides best-effort local and push notification dispatch.
//
// The package implements a small dispatcher that sends or schedules
// user-facing notifications by delegating to whichever notification
// subsystem the current runtime offers. Two delivery strategies exist:
//
//   - Desktop: the OS notification center, reached through native tools
//     (osascript on macOS, notify-send on Linux, PowerShell on Windows)
//     with a beeep-based fallback when those tools are missing.
//   - Push: an ntfy-compatible HTTP endpoint, for headless or remote
//     setups. Delayed delivery uses a process-local timer.
//
// The dispatcher is deliberately non-throwing: a notification is a
// courtesy, not a critical path, so every failure mode (capability
// missing, permission denied, platform call failure, even a panicking
// backend) is converted into a logged warning and the caller continues.
// Callers that need to know whether delivery can work at all should use
// the strategy introspection consumed by `nudge doctor` instead.
//
// # Usage
//
//	strategy := notify.NewDesktopStrategy(notify.DefaultHandlerConfig())
//	d := notify.NewDispatcher(strategy)
//	d.SendLocalNotification(ctx, "Build finished", "all tests passed")
//	d.ScheduleNotification(ctx, "Stand up", "stretch your legs", 25*time.Minute)
package notify
