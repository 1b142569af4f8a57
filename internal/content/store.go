package content

import (
	"log/slog"
	"sync"
)

// Store holds the currently loaded library and swaps it atomically on
// reload. Readers always see a complete, consistent library.
type Store struct {
	scanner *Scanner
	logger  *slog.Logger

	mu  sync.RWMutex
	lib *Library
}

// NewStore creates a store backed by the given scanner.
func NewStore(scanner *Scanner, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{scanner: scanner, logger: logger}
}

// Load performs the initial scan. Must be called before Library.
func (s *Store) Load() error {
	lib, err := s.scanner.ScanDir()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lib = lib
	s.mu.Unlock()
	return nil
}

// Reload rescans the content directory. On error the previous library
// stays in place so the site keeps serving the last good state.
func (s *Store) Reload() error {
	lib, err := s.scanner.ScanDir()
	if err != nil {
		s.logger.Error("content reload failed, keeping previous library", "error", err)
		return err
	}
	s.mu.Lock()
	s.lib = lib
	s.mu.Unlock()
	s.logger.Debug("content reloaded", "docs", lib.Len())
	return nil
}

// Library returns the current library snapshot.
func (s *Store) Library() *Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib
}
