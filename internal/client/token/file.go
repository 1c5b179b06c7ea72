package token

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the token in a single file, readable only by the owner.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore at the given path. When path is empty,
// the platform default under the user config directory is used.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "stitchdesk", "token")
	}
	return &FileStore{path: path}, nil
}

// Get reads the token file. Read errors (including a missing file) surface
// as "absent".
func (s *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	t := strings.TrimSpace(string(data))
	if t == "" {
		return "", false
	}
	return t, true
}

// Set writes the token, creating parent directories as needed.
func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the token file. A missing file is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
