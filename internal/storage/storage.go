// Package storage provides file system access to the store directory:
// the append-only store.db, the logs.log file, and the user config.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// storeFile holds one base64 encoding per line, append-only.
	storeFile = "store.db"
	// logFile is the append-only log written alongside the store.
	logFile = "logs.log"
)

// Storage provides access to a store directory.
type Storage struct {
	root string // directory containing store.db
}

// Open returns a Storage rooted at dir. The directory must exist; store.db
// itself is created lazily on first load or append.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("store directory %s does not exist", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &Storage{root: dir}, nil
}

// Root returns the store directory.
func (s *Storage) Root() string {
	return s.root
}

// StorePath returns the path to store.db.
func (s *Storage) StorePath() string {
	return filepath.Join(s.root, storeFile)
}

// LogPath returns the path to logs.log.
func (s *Storage) LogPath() string {
	return filepath.Join(s.root, logFile)
}

// LoadStore returns the full raw text content of store.db, creating an
// empty store if none exists. Safe to call before any write.
func (s *Storage) LoadStore() (string, error) {
	path := s.StorePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.WriteFile(path, nil, 0644); err != nil {
				return "", fmt.Errorf("failed to create %s: %w", storeFile, err)
			}
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", storeFile, err)
	}
	return string(data), nil
}

// AppendEntry adds entry plus a trailing newline to the end of store.db.
// It never deduplicates; callers check for existence first. Existing lines
// are never rewritten or removed.
func (s *Storage) AppendEntry(entry string) error {
	f, err := os.OpenFile(s.StorePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", storeFile, err)
	}
	if _, err := f.WriteString(entry + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", storeFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", storeFile, err)
	}
	return nil
}
