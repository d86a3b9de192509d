package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MockCapability is a test implementation of Capability. It records all
// method calls and allows configuring permission status, errors, and
// panicking behavior.
type MockCapability struct {
	mu sync.Mutex

	// Configuration
	Permission      PermissionStatus
	PermissionError error
	ScheduleError   error
	PanicOnSchedule bool

	// Call tracking
	HandlerCalls    []HandlerConfig
	PermissionCalls int
	ScheduleCalls   []ScheduledCall
}

// ScheduledCall records one ScheduleNotification invocation
type ScheduledCall struct {
	Notification Notification
	Trigger      Trigger
}

// NewMockCapability creates a mock that grants permission and succeeds
func NewMockCapability() *MockCapability {
	return &MockCapability{Permission: PermissionGranted}
}

// WithPermission configures the permission status the mock reports
func (m *MockCapability) WithPermission(status PermissionStatus) *MockCapability {
	m.Permission = status
	return m
}

// WithPermissionError configures RequestPermissions to fail
func (m *MockCapability) WithPermissionError(err error) *MockCapability {
	m.PermissionError = err
	return m
}

// WithScheduleError configures ScheduleNotification to fail
func (m *MockCapability) WithScheduleError(err error) *MockCapability {
	m.ScheduleError = err
	return m
}

// WithPanicOnSchedule configures ScheduleNotification to panic
func (m *MockCapability) WithPanicOnSchedule() *MockCapability {
	m.PanicOnSchedule = true
	return m
}

func (m *MockCapability) RequestPermissions(_ context.Context) (PermissionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PermissionCalls++
	if m.PermissionError != nil {
		return PermissionUndetermined, m.PermissionError
	}
	return m.Permission, nil
}

func (m *MockCapability) SetNotificationHandler(cfg HandlerConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HandlerCalls = append(m.HandlerCalls, cfg)
}

func (m *MockCapability) ScheduleNotification(_ context.Context, n Notification, trig Trigger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PanicOnSchedule {
		panic("mock capability panic")
	}
	m.ScheduleCalls = append(m.ScheduleCalls, ScheduledCall{Notification: n, Trigger: trig})
	return m.ScheduleError
}

// HandlerCallCount returns how many times SetNotificationHandler ran
func (m *MockCapability) HandlerCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.HandlerCalls)
}

// ScheduleCallCount returns how many times ScheduleNotification ran
func (m *MockCapability) ScheduleCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ScheduleCalls)
}

// LastSchedule returns the most recent schedule call
func (m *MockCapability) LastSchedule() (ScheduledCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ScheduleCalls) == 0 {
		return ScheduledCall{}, false
	}
	return m.ScheduleCalls[len(m.ScheduleCalls)-1], true
}

// mockSender is a test implementation of Sender for capability tests
type mockSender struct {
	mu sync.Mutex

	visualAvailable bool
	soundAvailable  bool
	visualError     error

	VisualCalls []Notification
	SoundCalls  []string
}

func (m *mockSender) SendVisual(n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VisualCalls = append(m.VisualCalls, n)
	return m.visualError
}

func (m *mockSender) SendSound(soundFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SoundCalls = append(m.SoundCalls, soundFile)
	return nil
}

func (m *mockSender) VisualAvailable() bool { return m.visualAvailable }
func (m *mockSender) SoundAvailable() bool  { return m.soundAvailable }

func (m *mockSender) visualCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.VisualCalls)
}

// warningRecorder captures dispatcher warnings for assertions
type warningRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *warningRecorder) logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *warningRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func (r *warningRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Common test errors
var errMockSchedule = errors.New("mock schedule error")
