package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"
)

// DefaultTimeout bounds HTTP helpers and waits.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at timeout or shortly before the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, hasDeadline := t.(interface{ Deadline() (time.Time, bool) }); hasDeadline {
		if deadline, ok := d.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// WaitForHTTP polls url until it answers 200 OK or the timeout elapses.
func WaitForHTTP(t testing.TB, url string, timeout time.Duration) {
	t.Helper()
	ctx := Context(t, timeout)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		if resp, err := http.DefaultClient.Do(req); err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		select {
		case <-ctx.Done():
			t.Fatalf("%s not ready before timeout", url)
		case <-ticker.C:
		}
	}
}
