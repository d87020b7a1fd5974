package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltFilename = "vaults.db"

var bucketVaults = []byte("vaults")

// BoltStore implements Store using bbolt. Each record is stored as the same
// JSON document FileStore writes, keyed by username.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a bbolt database at the given path and
// ensures the vaults bucket exists. The file is created with 0600 permissions.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, bErr := tx.CreateBucketIfNotExists(bucketVaults)
		return bErr
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load returns the record for username, or ErrNotFound.
func (s *BoltStore) Load(username string) (*VaultRecord, error) {
	if err := checkUsername(username); err != nil {
		return nil, err
	}

	var rec *VaultRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketVaults).Get([]byte(username))
		if v == nil {
			return ErrNotFound
		}
		var uErr error
		rec, uErr = unmarshalRecord(v)
		return uErr
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Save replaces the record for username in a single transaction.
func (s *BoltStore) Save(username string, rec *VaultRecord) error {
	if err := checkUsername(username); err != nil {
		return err
	}

	data, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketVaults).Put([]byte(username), data)
	})
}
