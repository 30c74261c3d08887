package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/dotcfg/internal/fixture"
)

// newFixture writes the canned fixture tree into a temp dir and returns it.
func newFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := fixture.Materialize(dir); err != nil {
		t.Fatalf("materializing fixture: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
