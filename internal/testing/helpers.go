package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TB is the subset of testing.TB the helpers need. It is satisfied by
// *testing.T and by GinkgoT().
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// WriteImage writes a PNG fixture named name into dir and returns its path.
func WriteImage(t TB, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, PNGBytes(payload), 0o600); err != nil {
		t.Fatalf("failed to write image fixture: %v", err)
	}
	return path
}
