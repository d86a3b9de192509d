package notify

import "log"

// warnf is the package-level warning sink. Delivery failures are warnings,
// never errors: notifications are best-effort by contract.
var warnf = func(format string, args ...any) {
	log.Printf("[notify] warning: "+format, args...)
}
