package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCorpus materialises a documentation tree under a temporary directory.
// Keys are slash-separated relative paths, values are file contents. The
// returned path is cleaned up automatically when the test finishes.
func WriteCorpus(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("create corpus dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write corpus file %s: %v", rel, err)
		}
	}
	return root
}
