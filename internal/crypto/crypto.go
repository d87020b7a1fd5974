// Package crypto provides the cryptographic primitives for VaultGuard.
// It implements AES-256-GCM for per-entry encryption and PBKDF2-HMAC-SHA256
// for deriving the vault key from the master password.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the size of AES-256 keys in bytes.
	KeySize = 32

	// NonceSize is the size of GCM nonces in bytes.
	NonceSize = 12

	// TagSize is the size of GCM authentication tags in bytes.
	TagSize = 16

	// SaltSize is the size of salts for key derivation in bytes.
	SaltSize = 16

	// PBKDF2Iterations is the PBKDF2 iteration count. Changing it makes
	// every existing vault unreadable.
	PBKDF2Iterations = 100_000
)

var (
	// ErrInvalidKeySize is returned when a key has an incorrect size.
	ErrInvalidKeySize = errors.New("key must be 32 bytes")

	// ErrInvalidSaltSize is returned when a salt has an incorrect size.
	ErrInvalidSaltSize = errors.New("salt must be 16 bytes")

	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify: wrong key, tampered ciphertext or wrong nonce.
	ErrDecryptionFailed = errors.New("decryption failed: authentication error")
)

// Blob is one authenticated-encryption result. The JSON field names are the
// on-disk vault format; []byte fields are stored as standard base64.
type Blob struct {
	Nonce      []byte `json:"iv"`
	Ciphertext []byte `json:"ciphertext"`
}

// Encrypt seals plaintext with AES-256-GCM under a fresh random nonce.
// Ciphertext carries the 16-byte tag appended.
func Encrypt(key, plaintext []byte) (Blob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return Blob{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return Blob{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return Blob{
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Decrypt opens a blob produced by Encrypt. Any malformed or unauthentic blob
// yields ErrDecryptionFailed.
func Decrypt(key []byte, blob Blob) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(blob.Nonce) != NonceSize || len(blob.Ciphertext) < TagSize {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, blob.Nonce, blob.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// GenerateSalt generates a cryptographically secure random 16-byte salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey derives a 32-byte key from a password using PBKDF2-HMAC-SHA256.
// The salt must be 16 bytes.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, ErrInvalidSaltSize
	}
	return pbkdf2.Key(password, salt, PBKDF2Iterations, KeySize, sha256.New), nil
}

// ZeroBytes securely zeros a byte slice.
// Use this to clear sensitive data from memory when done.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
