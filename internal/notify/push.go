package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const pushUserAgent = "nudge/0.1"

// defaultPushTimeout bounds each HTTP call to the push endpoint
const defaultPushTimeout = 10 * time.Second

// PushStrategy delivers through an ntfy-compatible HTTP push endpoint.
// Delayed delivery arms a process-local timer; the timer dies with the
// process and cannot be revoked once armed.
type PushStrategy struct {
	endpoint string
	token    string
	client   *http.Client

	mu         sync.Mutex
	permission PermissionStatus
}

// PushOption configures a PushStrategy
type PushOption func(*PushStrategy)

// WithPushToken sets the bearer token sent with every request
func WithPushToken(token string) PushOption {
	return func(s *PushStrategy) {
		s.token = token
	}
}

// WithPushTimeout overrides the per-request HTTP timeout
func WithPushTimeout(timeout time.Duration) PushOption {
	return func(s *PushStrategy) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// NewPushStrategy creates a push delivery strategy publishing to endpoint.
// An empty endpoint yields a strategy whose every call reports the
// capability as unavailable.
func NewPushStrategy(endpoint string, opts ...PushOption) *PushStrategy {
	s := &PushStrategy{
		endpoint:   strings.TrimSpace(endpoint),
		client:     &http.Client{Timeout: defaultPushTimeout},
		permission: PermissionUndetermined,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy
func (s *PushStrategy) Name() string {
	return "push"
}

// Send publishes a notification immediately
func (s *PushStrategy) Send(ctx context.Context, n Notification) error {
	if s.endpoint == "" {
		return ErrUnavailable
	}

	status, err := s.requestPermission(ctx)
	if err != nil {
		return fmt.Errorf("probe push endpoint: %w", err)
	}
	if status != PermissionGranted {
		return ErrPermissionDenied
	}

	return s.publish(ctx, n)
}

// Schedule arms a timer that publishes the notification after delay.
// The armed timer cannot be cancelled and delivers at most once.
func (s *PushStrategy) Schedule(_ context.Context, n Notification, delay time.Duration) error {
	if s.endpoint == "" {
		return ErrUnavailable
	}

	time.AfterFunc(delay, func() {
		// The scheduling call has long returned; failures can only be logged.
		if err := s.Send(context.Background(), n); err != nil {
			warnf("delayed push notification failed: %v", err)
		}
	})
	return nil
}

// requestPermission resolves the endpoint's permission state, probing it on
// first use. 401/403 responses mean the endpoint refuses us; the verdict is
// cached for the process lifetime. Transport errors leave the state
// undetermined so a later call can retry.
func (s *PushStrategy) requestPermission(ctx context.Context) (PermissionStatus, error) {
	s.mu.Lock()
	if s.permission != PermissionUndetermined {
		status := s.permission
		s.mu.Unlock()
		return status, nil
	}
	s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.endpoint, nil)
	if err != nil {
		return PermissionUndetermined, fmt.Errorf("build probe request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return PermissionUndetermined, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	status := PermissionGranted
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		status = PermissionDenied
	}

	s.mu.Lock()
	s.permission = status
	s.mu.Unlock()
	return status, nil
}

// publish POSTs the notification body with ntfy-style headers
func (s *PushStrategy) publish(ctx context.Context, n Notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(n.Body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("User-Agent", pushUserAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if n.Title != "" {
		req.Header.Set("Title", n.Title)
	}
	req.Header.Set("Tags", "nudge")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("push endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *PushStrategy) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}

// Check reports delivery readiness without publishing anything
func (s *PushStrategy) Check(ctx context.Context) CheckResult {
	result := CheckResult{Strategy: s.Name(), Permission: PermissionUndetermined}

	if s.endpoint == "" {
		result.Detail = "no push endpoint configured"
		return result
	}
	result.Available = true

	status, err := s.requestPermission(ctx)
	if err != nil {
		result.Detail = fmt.Sprintf("endpoint unreachable: %v", err)
		return result
	}
	result.Permission = status
	if status != PermissionGranted {
		result.Detail = "push endpoint refused credentials"
	}
	return result
}
