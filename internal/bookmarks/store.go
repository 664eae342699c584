package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	defaultDirPerms  = 0o750
	defaultFilePerms = 0o600
)

// Store persists the bookmark list.
type Store interface {
	Load() ([]Bookmark, error)
	Save([]Bookmark) error
}

// FileStore keeps bookmarks in a JSON document at a fixed per-user
// location.
type FileStore struct {
	path string
}

type storeDocument struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// DefaultStorePath returns <user config dir>/skiff/bookmarks.json.
func DefaultStorePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "skiff", "bookmarks.json"), nil
}

// NewFileStore returns a FileStore rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the bookmark document. A missing file yields an empty
// list, not an error.
func (s *FileStore) Load() ([]Bookmark, error) {
	// #nosec G304 -- the store path is derived from the user config dir
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Bookmarks, nil
}

// Save writes the bookmark document, creating the parent directory on
// first use.
func (s *FileStore) Save(bookmarks []Bookmark) error {
	if err := os.MkdirAll(filepath.Dir(s.path), defaultDirPerms); err != nil {
		return err
	}
	data, err := json.MarshalIndent(storeDocument{Bookmarks: bookmarks}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, defaultFilePerms)
}
