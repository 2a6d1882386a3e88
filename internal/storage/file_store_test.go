package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".credentials.json")

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	if err := store.Save("access-1", "refresh-1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A fresh store reads the same pair back from disk.
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error: %v", err)
	}
	if reopened.Access() != "access-1" || reopened.Refresh() != "refresh-1" {
		t.Errorf("reopened pair = (%q, %q)", reopened.Access(), reopened.Refresh())
	}
}

func TestFileStoreUsesStableKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".credentials.json")

	store, _ := NewFileStore(path)
	if err := store.Save("a", "r"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[KeyToken] != "a" || raw[KeyRefresh] != "r" {
		t.Errorf("persisted keys = %v, want %q and %q", raw, KeyToken, KeyRefresh)
	}
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".credentials.json")

	store, _ := NewFileStore(path)
	store.Save("a", "r")

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("credentials file still present after Clear")
	}
	if store.Access() != "" || store.Refresh() != "" {
		t.Errorf("in-memory pair survives Clear")
	}

	// Clearing an already-cleared store is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error: %v", err)
	}
}

func TestFileStoreCorruptFileReadsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error on corrupt file: %v", err)
	}
	if store.Access() != "" || store.Refresh() != "" {
		t.Errorf("corrupt file produced credentials")
	}
}

func TestFileStoreMissingFileReadsAsLoggedOut(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	if store.Access() != "" {
		t.Errorf("missing file produced credentials")
	}
}
