// Package store persists one VaultRecord per username.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by store operations.
var (
	ErrNotFound        = errors.New("vault record not found")
	ErrInvalidUsername = errors.New("username cannot be used as a storage key")
	ErrUnknownDriver   = errors.New("unknown storage driver")
)

// Supported storage drivers.
const (
	DriverFile = "file"
	DriverBolt = "bolt"
)

// Store defines the load/save contract for vault records. Save always
// replaces the whole record.
type Store interface {
	Load(username string) (*VaultRecord, error)
	Save(username string, rec *VaultRecord) error
	Close() error
}

// Open returns the Store for driver rooted at dir, creating dir with 0700
// permissions if needed.
func Open(driver, dir string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(dir)
	case DriverBolt:
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
		return NewBoltStore(filepath.Join(dir, boltFilename))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// checkUsername rejects names that are empty or could escape the storage
// directory when used as a file name.
func checkUsername(username string) error {
	if username == "" || username == "." || username == ".." ||
		strings.ContainsAny(username, `/\`) || strings.ContainsRune(username, 0) {
		return ErrInvalidUsername
	}
	return nil
}
