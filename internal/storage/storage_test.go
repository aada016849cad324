package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if s.Root() != dir {
		t.Errorf("expected root %q, got %q", dir, s.Root())
	}

	// Missing directory
	if _, err := Open(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for missing directory")
	}

	// Path that is a file
	filePath := filepath.Join(dir, "afile")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Open(filePath); err == nil {
		t.Error("expected error for non-directory path")
	}
}

func TestLoadStoreCreatesEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	text, err := s.LoadStore()
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty store, got %q", text)
	}

	// The file should now exist
	if _, err := os.Stat(s.StorePath()); err != nil {
		t.Errorf("expected store.db to be created: %v", err)
	}

	// Idempotent
	if _, err := s.LoadStore(); err != nil {
		t.Errorf("second LoadStore failed: %v", err)
	}
}

func TestAppendEntry(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.AppendEntry("aGVsbG8="); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	if err := s.AppendEntry("d29ybGQ="); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	text, err := s.LoadStore()
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	want := "aGVsbG8=\nd29ybGQ=\n"
	if text != want {
		t.Errorf("expected store %q, got %q", want, text)
	}
}

// AppendEntry must not deduplicate; the exists-first protocol lives in the
// flag operation, not here.
func TestAppendEntryNoDedup(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := s.AppendEntry("same"); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	if err := s.AppendEntry("same"); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	text, _ := s.LoadStore()
	if text != "same\nsame\n" {
		t.Errorf("expected both entries kept, got %q", text)
	}
}
