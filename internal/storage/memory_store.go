package storage

// MemoryStore holds the credential pair for the lifetime of the process.
// Used by tests and by one-shot invocations that should not persist anything.
type MemoryStore struct {
	access  string
	refresh string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Access() string {
	return s.access
}

func (s *MemoryStore) Refresh() string {
	return s.refresh
}

func (s *MemoryStore) Save(access, refresh string) error {
	s.access = access
	s.refresh = refresh
	return nil
}

func (s *MemoryStore) Clear() error {
	s.access = ""
	s.refresh = ""
	return nil
}
