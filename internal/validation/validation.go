// Package validation provides input validation functions.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// AuthMarker is the reserved entry name holding the login sentinel.
const AuthMarker = "vaultguard-auth"

var (
	// ErrUsernameLength is returned when username is not 8-32 characters.
	ErrUsernameLength = errors.New("username must be 8-32 characters")
	// ErrUsernameInvalidChars is returned when username contains invalid characters.
	ErrUsernameInvalidChars = errors.New("username can only contain letters, numbers, underscores, and spaces")
	// ErrUsernameBlank is returned when username is only whitespace.
	ErrUsernameBlank = errors.New("username cannot be blank")

	// ErrPasswordLength is returned when password is not 8-32 characters.
	ErrPasswordLength = errors.New("password must be 8-32 characters")
	// ErrPasswordSpace is returned when password contains a space.
	ErrPasswordSpace = errors.New("password cannot contain spaces")

	// ErrKeyNameLength is returned when key name is not 1-64 characters.
	ErrKeyNameLength = errors.New("key name must be 1-64 characters")
	// ErrKeyNameInvalidChars is returned when key name contains invalid characters.
	ErrKeyNameInvalidChars = errors.New("key name can only contain letters, numbers, underscores, hyphens, and spaces")
	// ErrKeyNameBlank is returned when key name is only whitespace.
	ErrKeyNameBlank = errors.New("key name cannot be blank")
	// ErrKeyNameReserved is returned for the auth marker name.
	ErrKeyNameReserved = errors.New("key name is reserved")

	// ErrKeyValueLength is returned when key value is not 1-1024 characters.
	ErrKeyValueLength = errors.New("key value must be 1-1024 characters")
	// ErrKeyValueBlank is returned when key value is only whitespace.
	ErrKeyValueBlank = errors.New("key value cannot be blank")
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_ ]+$`)
	keyNameRegex  = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)
)

// Credentials validates a username and master password pair.
// Username: 8-32 characters, letters/numbers/underscore/space, not blank.
// Password: 8-32 characters, no spaces.
func Credentials(username, password string) error {
	if err := Username(username); err != nil {
		return err
	}
	return Password(password)
}

// Username validates a username.
func Username(username string) error {
	if n := utf8.RuneCountInString(username); n < 8 || n > 32 {
		return ErrUsernameLength
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameInvalidChars
	}
	if strings.TrimSpace(username) == "" {
		return ErrUsernameBlank
	}
	return nil
}

// Password validates a master password.
func Password(password string) error {
	if n := utf8.RuneCountInString(password); n < 8 || n > 32 {
		return ErrPasswordLength
	}
	if strings.Contains(password, " ") {
		return ErrPasswordSpace
	}
	return nil
}

// KeyName validates the name of a vault entry.
// Rules: 1-64 characters, letters/numbers/underscore/hyphen/space, not blank,
// not the auth marker.
func KeyName(name string) error {
	if name == AuthMarker {
		return ErrKeyNameReserved
	}
	if n := utf8.RuneCountInString(name); n < 1 || n > 64 {
		return ErrKeyNameLength
	}
	if !keyNameRegex.MatchString(name) {
		return ErrKeyNameInvalidChars
	}
	if strings.TrimSpace(name) == "" {
		return ErrKeyNameBlank
	}
	return nil
}

// KeyValue validates a secret value.
// Rules: 1-1024 characters, not blank.
func KeyValue(value string) error {
	if n := utf8.RuneCountInString(value); n < 1 || n > 1024 {
		return ErrKeyValueLength
	}
	if strings.TrimSpace(value) == "" {
		return ErrKeyValueBlank
	}
	return nil
}
