package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestRemoveStaleHandles(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-2 * StaleHandleAge)

	stale := []string{"voice-1.wav", "voice-2.mp3"}
	for _, name := range stale {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		if err := os.Chtimes(path, old, old); err != nil {
			t.Fatalf("Failed to age %s: %v", name, err)
		}
	}
	keep := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(keep, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create notes.txt: %v", err)
	}
	if err := os.Chtimes(keep, old, old); err != nil {
		t.Fatalf("Failed to age notes.txt: %v", err)
	}
	live := filepath.Join(dir, "voice-live.wav")
	if err := os.WriteFile(live, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create voice-live.wav: %v", err)
	}

	removed, err := RemoveStaleHandles(dir, StaleHandleAge)
	if err != nil {
		t.Fatalf("RemoveStaleHandles returned error: %v", err)
	}
	if removed != len(stale) {
		t.Errorf("RemoveStaleHandles removed %d files, expected %d", removed, len(stale))
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("Unrelated file should be kept: %v", err)
	}
	if _, err := os.Stat(live); err != nil {
		t.Errorf("Recent handle of a running process should be kept: %v", err)
	}
}

func TestRemoveStaleHandles_MissingDirectory(t *testing.T) {
	removed, err := RemoveStaleHandles(filepath.Join(t.TempDir(), "missing"), StaleHandleAge)
	if err != nil {
		t.Fatalf("Expected no error for missing directory, got %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected 0 removed, got %d", removed)
	}
}
