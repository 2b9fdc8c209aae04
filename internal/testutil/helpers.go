package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content, making parent
// directories as needed.
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestDict writes a small CMUdict-format dictionary into dir and
// returns its path. It contains the words used by the CLI scenarios.
func CreateTestDict(t *testing.T, dir string) string {
	t.Helper()

	content := `;;; test dictionary
CAT  K AE1 T
BEST  B EH1 S T
KEPT  K EH1 P T
SECRET  S IY1 K R AH0 T
OF  AH1 V
`
	path := filepath.Join(dir, "test.dict")
	CreateTestFile(t, path, []byte(content))
	return path
}

// CreatePhraseFile writes one phrase per line into dir and returns the path.
func CreatePhraseFile(t *testing.T, dir string, phrases ...string) string {
	t.Helper()

	content := ""
	for _, p := range phrases {
		content += p + "\n"
	}
	path := filepath.Join(dir, "phrases.txt")
	CreateTestFile(t, path, []byte(content))
	return path
}
