package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the credential pair in a small JSON file, written
// atomically via rename so a crash never leaves a half-written pair.
type FileStore struct {
	path   string
	values map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// A corrupt file is treated as logged out rather than fatal.
		s.values = make(map[string]string)
	}

	return s, nil
}

func (s *FileStore) Access() string {
	return s.values[KeyToken]
}

func (s *FileStore) Refresh() string {
	return s.values[KeyRefresh]
}

func (s *FileStore) Save(access, refresh string) error {
	s.values[KeyToken] = access
	s.values[KeyRefresh] = refresh
	return s.flush()
}

func (s *FileStore) Clear() error {
	s.values = make(map[string]string)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

func (s *FileStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}
	return nil
}
