package vault

import (
	"errors"
	"fmt"

	"github.com/Brydon13/vaultguard/internal/crypto"
	"github.com/Brydon13/vaultguard/internal/store"
	"github.com/Brydon13/vaultguard/internal/validation"
)

// List returns the names of the session user's entries in storage order,
// excluding the auth marker. A logged-out session gets an empty list.
func (m *Manager) List(s *Session) ([]string, error) {
	names := []string{}
	if !s.Active() {
		return names, nil
	}

	rec, err := m.load(s)
	if err != nil {
		return names, err
	}

	for _, e := range rec.Entries {
		if e.Name != AuthMarker {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

// Get decrypts the entry called name. Logged out, the auth marker, a missing
// entry and a failed decryption all yield ErrNotFound.
func (m *Manager) Get(s *Session, name string) (string, error) {
	if !s.Active() || name == AuthMarker {
		return "", ErrNotFound
	}

	rec, err := m.load(s)
	if err != nil {
		return "", err
	}

	i := rec.Index(name)
	if i < 0 {
		return "", ErrNotFound
	}

	var value string
	err = s.key.Use(func(key []byte) error {
		plaintext, dErr := crypto.Decrypt(key, rec.Entries[i].Payload)
		if dErr != nil {
			return dErr
		}
		value = string(plaintext)
		crypto.ZeroBytes(plaintext)
		return nil
	})
	if err != nil {
		m.logger.Warn("entry did not decrypt", "session_id", s.ID, "entry", name)
		return "", ErrNotFound
	}
	return value, nil
}

// Add encrypts value and appends it as a new entry. A taken name yields
// ErrExists.
func (m *Manager) Add(s *Session, name, value string) error {
	if !s.Active() {
		return ErrNotLoggedIn
	}
	if err := checkEntry(name, value); err != nil {
		return err
	}

	rec, err := m.load(s)
	if err != nil {
		return err
	}

	if rec.Index(name) >= 0 {
		return ErrExists
	}

	blob, err := seal(s, value)
	if err != nil {
		return err
	}
	rec.Entries = append(rec.Entries, store.VaultEntry{Name: name, Payload: blob})

	if err := m.save(s, rec); err != nil {
		return err
	}
	m.logger.Debug("entry added", "session_id", s.ID, "entry", name)
	return nil
}

// Edit replaces the value of an existing entry under a fresh nonce. A missing
// entry yields ErrNotFound and leaves the record untouched.
func (m *Manager) Edit(s *Session, name, value string) error {
	if !s.Active() {
		return ErrNotLoggedIn
	}
	if err := checkEntry(name, value); err != nil {
		return err
	}

	rec, err := m.load(s)
	if err != nil {
		return err
	}

	i := rec.Index(name)
	if i < 0 {
		return ErrNotFound
	}

	blob, err := seal(s, value)
	if err != nil {
		return err
	}
	rec.Entries[i].Payload = blob

	if err := m.save(s, rec); err != nil {
		return err
	}
	m.logger.Debug("entry edited", "session_id", s.ID, "entry", name)
	return nil
}

// Delete removes the entry called name, keeping the order of the rest.
func (m *Manager) Delete(s *Session, name string) error {
	if !s.Active() {
		return ErrNotLoggedIn
	}
	if err := validation.KeyName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rec, err := m.load(s)
	if err != nil {
		return err
	}

	i := rec.Index(name)
	if i < 0 {
		return ErrNotFound
	}
	rec.Entries = append(rec.Entries[:i], rec.Entries[i+1:]...)

	if err := m.save(s, rec); err != nil {
		return err
	}
	m.logger.Debug("entry deleted", "session_id", s.ID, "entry", name)
	return nil
}

func checkEntry(name, value string) error {
	if err := validation.KeyName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.KeyValue(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// seal encrypts value under the session key.
func seal(s *Session, value string) (crypto.Blob, error) {
	var blob crypto.Blob
	err := s.key.Use(func(key []byte) error {
		var eErr error
		blob, eErr = crypto.Encrypt(key, []byte(value))
		return eErr
	})
	if errors.Is(err, crypto.ErrKeyDestroyed) {
		return crypto.Blob{}, ErrNotLoggedIn
	}
	if err != nil {
		return crypto.Blob{}, fmt.Errorf("encrypt entry: %w", err)
	}
	return blob, nil
}
