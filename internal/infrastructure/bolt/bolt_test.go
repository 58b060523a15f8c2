package bolt

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "fintrack.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Fatalf("expected path %s, got %s", path, db.Path())
	}
}
