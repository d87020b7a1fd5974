package vault

import (
	"errors"
	"fmt"

	"github.com/Brydon13/vaultguard/internal/store"
)

// Outcome errors. Every controller operation either succeeds or returns one
// of these (possibly wrapping a cause), so callers branch with errors.Is.
var (
	// ErrInvalidInput is returned when a username, password, key name or
	// value fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed is returned when login cannot verify the master password.
	// Unknown users and wrong passwords both produce it.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotFound is returned when an entry is absent or cannot be decrypted.
	ErrNotFound = errors.New("entry not found")

	// ErrExists is returned when registering a taken username or adding an
	// entry whose name is already used.
	ErrExists = errors.New("already exists")

	// ErrNotLoggedIn is returned when an operation needs an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrStorage wraps failures to load or save the vault record.
	ErrStorage = errors.New("vault storage failure")
)

// mapStoreError translates store-level errors to vault-level errors.
func mapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
