// Package health implements the readiness checks behind `nudge doctor`.
package health

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/nudge-cli/nudge/internal/notify"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// RunHealthChecks probes the platform tools and the active delivery
// strategy and returns a report. The strategy check never displays a
// notification.
func RunHealthChecks(ctx context.Context, strategy notify.Strategy) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}

	for _, check := range platformChecks() {
		report.Checks = append(report.Checks, check)
		// Tool checks are informational; only the strategy check gates Passed
	}

	strategyCheck := CheckStrategy(ctx, strategy)
	report.Checks = append(report.Checks, strategyCheck)
	if !strategyCheck.Passed {
		report.Passed = false
	}

	return report
}

// platformChecks returns tool availability checks for the current OS
func platformChecks() []CheckResult {
	switch runtime.GOOS {
	case "darwin":
		return []CheckResult{
			CheckTool("osascript", "visual notifications"),
			CheckTool("afplay", "notification sounds"),
		}
	case "linux":
		return []CheckResult{
			CheckTool("notify-send", "visual notifications"),
			CheckTool("paplay", "notification sounds"),
			CheckDisplay(),
		}
	case "windows":
		return []CheckResult{
			CheckTool("powershell", "toast notifications and sounds"),
		}
	default:
		return []CheckResult{{
			Name:    "Platform",
			Passed:  false,
			Message: fmt.Sprintf("no native notification tools on %s (beeep fallback only)", runtime.GOOS),
		}}
	}
}

// CheckTool checks if a command-line tool is available in PATH
func CheckTool(name, purpose string) CheckResult {
	if _, err := exec.LookPath(name); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH (%s)", name, purpose),
		}
	}
	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%s found", name),
	}
}

// CheckDisplay checks for an X11 or Wayland display environment
func CheckDisplay() CheckResult {
	if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		return CheckResult{
			Name:    "Display",
			Passed:  true,
			Message: "display environment found",
		}
	}
	return CheckResult{
		Name:    "Display",
		Passed:  false,
		Message: "no DISPLAY or WAYLAND_DISPLAY set",
	}
}

// CheckStrategy asks the active delivery strategy whether it can deliver
func CheckStrategy(ctx context.Context, strategy notify.Strategy) CheckResult {
	if strategy == nil {
		return CheckResult{
			Name:    "Backend",
			Passed:  false,
			Message: "no delivery backend configured",
		}
	}

	result := strategy.Check(ctx)
	name := fmt.Sprintf("Backend (%s)", result.Strategy)

	if !result.Available {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: result.Detail,
		}
	}
	if result.Permission != notify.PermissionGranted {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: result.Detail,
		}
	}
	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: "ready to deliver notifications",
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s\n", check.Message)
		} else {
			output += fmt.Sprintf("✗ %s\n", check.Message)
		}
	}

	return output
}
