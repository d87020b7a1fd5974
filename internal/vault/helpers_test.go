package vault

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/Brydon13/vaultguard/internal/store"
)

// memStore keeps records as JSON so callers never share memory with it.
type memStore map[string][]byte

func (m memStore) Load(username string) (*store.VaultRecord, error) {
	data, ok := m[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	var rec store.VaultRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m memStore) Save(username string, rec *store.VaultRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	m[username] = data
	return nil
}

func (m memStore) Close() error { return nil }

var errDisk = errors.New("disk on fire")

// faultyStore fails loads or saves on demand.
type faultyStore struct {
	store.Store
	failLoad bool
	failSave bool
}

func (f *faultyStore) Load(username string) (*store.VaultRecord, error) {
	if f.failLoad {
		return nil, errDisk
	}
	return f.Store.Load(username)
}

func (f *faultyStore) Save(username string, rec *store.VaultRecord) error {
	if f.failSave {
		return errDisk
	}
	return f.Store.Save(username, rec)
}

func recordsEqual(a, b *store.VaultRecord) bool {
	return reflect.DeepEqual(a, b)
}
