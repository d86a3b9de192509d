package notify

import (
	"context"
	"testing"
	"time"
)

func TestDesktopStrategy_ResolvesCapabilityOnce(t *testing.T) {
	t.Parallel()
	resolutions := 0
	mock := NewMockCapability()
	s := NewDesktopStrategy(DefaultHandlerConfig(),
		WithQuietInCI(false),
		WithCapabilityResolver(func() Capability {
			resolutions++
			return mock
		}),
	)

	for i := 0; i < 5; i++ {
		_ = s.Send(context.Background(), NewNotification("t", "b"))
	}

	if resolutions != 1 {
		t.Errorf("capability resolved %d times, expected 1", resolutions)
	}
}

func TestDesktopStrategy_UnresolvableMakesNoAPICalls(t *testing.T) {
	t.Parallel()
	s := NewDesktopStrategy(DefaultHandlerConfig(),
		WithQuietInCI(false),
		WithCapabilityResolver(func() Capability { return nil }),
	)

	if err := s.Send(context.Background(), NewNotification("t", "b")); err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if err := s.Schedule(context.Background(), NewNotification("t", "b"), time.Second); err != ErrUnavailable {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestDesktopStrategy_HandlerConfigPassedThrough(t *testing.T) {
	t.Parallel()
	mock := NewMockCapability()
	handler := HandlerConfig{PlaySound: false, SetBadge: true, ShowBanner: true, ShowInList: false}
	s := NewDesktopStrategy(handler,
		WithQuietInCI(false),
		WithCapabilityResolver(func() Capability { return mock }),
	)

	_ = s.Send(context.Background(), NewNotification("t", "b"))

	if got := mock.HandlerCallCount(); got != 1 {
		t.Fatalf("expected 1 handler registration, got %d", got)
	}
	if mock.HandlerCalls[0] != handler {
		t.Errorf("handler config not passed through: got %+v", mock.HandlerCalls[0])
	}
}

func TestDesktopStrategy_Check(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		capability     Capability
		wantAvailable  bool
		wantPermission PermissionStatus
	}{
		"granted capability": {
			capability:     NewMockCapability(),
			wantAvailable:  true,
			wantPermission: PermissionGranted,
		},
		"denied capability": {
			capability:     NewMockCapability().WithPermission(PermissionDenied),
			wantAvailable:  true,
			wantPermission: PermissionDenied,
		},
		"no capability": {
			capability:     nil,
			wantAvailable:  false,
			wantPermission: PermissionUndetermined,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			capability := tt.capability
			s := NewDesktopStrategy(DefaultHandlerConfig(),
				WithQuietInCI(false),
				WithCapabilityResolver(func() Capability { return capability }),
			)

			result := s.Check(context.Background())
			if result.Strategy != "desktop" {
				t.Errorf("unexpected strategy name %q", result.Strategy)
			}
			if result.Available != tt.wantAvailable {
				t.Errorf("Available = %v, expected %v", result.Available, tt.wantAvailable)
			}
			if result.Permission != tt.wantPermission {
				t.Errorf("Permission = %v, expected %v", result.Permission, tt.wantPermission)
			}
		})
	}
}

func TestDesktopStrategy_CheckDisplaysNothing(t *testing.T) {
	t.Parallel()
	mock := NewMockCapability()
	s := NewDesktopStrategy(DefaultHandlerConfig(),
		WithQuietInCI(false),
		WithCapabilityResolver(func() Capability { return mock }),
	)

	_ = s.Check(context.Background())

	if got := mock.ScheduleCallCount(); got != 0 {
		t.Errorf("Check must not display anything, got %d schedule calls", got)
	}
}

func TestDesktopStrategy_Name(t *testing.T) {
	t.Parallel()
	if got := NewDesktopStrategy(DefaultHandlerConfig()).Name(); got != "desktop" {
		t.Errorf("Name() = %q, expected %q", got, "desktop")
	}
}
