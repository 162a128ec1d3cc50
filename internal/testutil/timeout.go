package testutil

import (
	"testing"
	"time"
)

// DefaultSessionTimeout bounds a scripted game session in tests.
const DefaultSessionTimeout = 5 * time.Second

// RunWithDeadline runs fn in a goroutine and returns its error. If fn has
// not returned after timeout, or before the test's own deadline, the test
// fails immediately.
func RunWithDeadline(t *testing.T, timeout time.Duration, fn func() error) error {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		t.Fatalf("session did not finish within %v", timeout)
		return nil
	}
}
