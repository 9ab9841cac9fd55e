package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultDataDir returns ~/.config/wellmind.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wellmind"), nil
}

// FileStore keeps one indented JSON file per key inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file backing key.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load implements Store.
func (f *FileStore) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "read", Key: key, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &IOError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// Save implements Store. The document is written to a temporary file and
// renamed into place so a crash never leaves a truncated state file.
func (f *FileStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Key: key, Err: err}
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return &IOError{Op: "write", Key: key, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &IOError{Op: "write", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "write", Key: key, Err: err}
	}
	if err := os.Rename(tmpName, f.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return &IOError{Op: "write", Key: key, Err: err}
	}

	log.Printf("Saved %s (%d bytes)", key, len(data))
	return nil
}
