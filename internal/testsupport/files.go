package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteMaterial creates a small fixture file standing in for a media asset
// and returns its absolute path.
func WriteMaterial(t testing.TB, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("fixture"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
