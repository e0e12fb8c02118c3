package content

import "sync"

// Store holds the page content currently being served. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	current PageContent
}

// NewStore creates a Store serving c.
func NewStore(c PageContent) *Store {
	return &Store{current: c}
}

// Get returns the current content.
func (s *Store) Get() PageContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current content.
func (s *Store) Set(c PageContent) {
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
}
