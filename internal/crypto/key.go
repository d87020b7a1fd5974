package crypto

import (
	"errors"

	"github.com/awnumar/memguard"
)

// ErrKeyDestroyed is returned when a destroyed Key is used.
var ErrKeyDestroyed = errors.New("key has been destroyed")

// Key holds a derived key sealed in a memguard enclave. The plaintext key is
// only materialised in locked memory for the duration of Use.
type Key struct {
	enclave *memguard.Enclave
}

// NewKey seals raw into an enclave and wipes raw.
func NewKey(raw []byte) (*Key, error) {
	if len(raw) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return &Key{enclave: memguard.NewEnclave(raw)}, nil
}

// Use opens the key into locked memory and passes it to fn. The slice must
// not be retained after fn returns.
func (k *Key) Use(fn func(key []byte) error) error {
	if !k.Alive() {
		return ErrKeyDestroyed
	}

	lb, err := k.enclave.Open()
	if err != nil {
		return err
	}
	defer lb.Destroy()

	return fn(lb.Bytes())
}

// Alive reports whether the key can still be used.
func (k *Key) Alive() bool {
	return k != nil && k.enclave != nil
}

// Destroy drops the enclave. Further calls to Use fail with ErrKeyDestroyed.
func (k *Key) Destroy() {
	if k != nil {
		k.enclave = nil
	}
}
