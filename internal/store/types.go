package store

import (
	"encoding/json"
	"fmt"

	"github.com/Brydon13/vaultguard/internal/crypto"
)

// VaultRecord is everything persisted for one user: the KDF salt and the
// ordered list of encrypted entries, including the auth marker.
type VaultRecord struct {
	Salt    []byte       `json:"salt"`
	Entries []VaultEntry `json:"keys"`
}

// VaultEntry is one named encrypted value.
type VaultEntry struct {
	Name    string      `json:"name"`
	Payload crypto.Blob `json:"encryptedKey"`
}

// Index returns the position of the entry called name, or -1.
func (r *VaultRecord) Index(name string) int {
	for i := range r.Entries {
		if r.Entries[i].Name == name {
			return i
		}
	}
	return -1
}

func marshalRecord(rec *VaultRecord) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal vault record: %w", err)
	}
	return data, nil
}

func unmarshalRecord(data []byte) (*VaultRecord, error) {
	var rec VaultRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal vault record: %w", err)
	}
	return &rec, nil
}
