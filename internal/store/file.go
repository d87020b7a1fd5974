package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each record in <dir>/<username>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates dir with 0700 permissions if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(username string) (string, error) {
	if err := checkUsername(username); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, username+".json"), nil
}

// Load reads the record for username, or returns ErrNotFound.
func (s *FileStore) Load(username string) (*VaultRecord, error) {
	path, err := s.path(username)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}
	return unmarshalRecord(data)
}

// Save writes the record to a temp file in the same directory, syncs it and
// renames it over the old file, so a crash never leaves a truncated vault.
func (s *FileStore) Save(username string, rec *VaultRecord) error {
	path, err := s.path(username)
	if err != nil {
		return err
	}

	data, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+username+".json.tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace vault file: %w", err)
	}
	return nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}
