package validation

import (
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{
			name:     "valid username",
			username: "alice_01",
			wantErr:  nil,
		},
		{
			name:     "valid username with space",
			username: "alice smith",
			wantErr:  nil,
		},
		{
			name:     "valid minimum length",
			username: strings.Repeat("a", 8),
			wantErr:  nil,
		},
		{
			name:     "max length valid",
			username: strings.Repeat("a", 32),
			wantErr:  nil,
		},
		{
			name:     "too short",
			username: "alice01",
			wantErr:  ErrUsernameLength,
		},
		{
			name:     "empty",
			username: "",
			wantErr:  ErrUsernameLength,
		},
		{
			name:     "too long",
			username: strings.Repeat("a", 33),
			wantErr:  ErrUsernameLength,
		},
		{
			name:     "invalid characters - hyphen",
			username: "alice-smith",
			wantErr:  ErrUsernameInvalidChars,
		},
		{
			name:     "invalid characters - special",
			username: "alice@example",
			wantErr:  ErrUsernameInvalidChars,
		},
		{
			name:     "invalid characters - tab",
			username: "alice\tsmith",
			wantErr:  ErrUsernameInvalidChars,
		},
		{
			name:     "only spaces",
			username: strings.Repeat(" ", 10),
			wantErr:  ErrUsernameBlank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if err != tt.wantErr {
				t.Errorf("Username(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Secret123", nil},
		{"valid symbols", "p@ss!word#", nil},
		{"min length", strings.Repeat("x", 8), nil},
		{"max length", strings.Repeat("x", 32), nil},
		{"too short", "Secret1", ErrPasswordLength},
		{"empty", "", ErrPasswordLength},
		{"too long", strings.Repeat("x", 33), ErrPasswordLength},
		{"contains space", "Secret 123", ErrPasswordSpace},
		{"leading space", " Secret123", ErrPasswordSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if err != tt.wantErr {
				t.Errorf("Password(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"both valid", "alice_01", "Secret123", nil},
		{"bad username", "bob", "Secret123", ErrUsernameLength},
		{"bad password", "alice_01", "short", ErrPasswordLength},
		{"both bad reports username", "bob", "short", ErrUsernameLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Credentials(tt.username, tt.password)
			if err != tt.wantErr {
				t.Errorf("Credentials(%q, %q) = %v, want %v", tt.username, tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"simple", "email", nil},
		{"with hyphen", "work-email", nil},
		{"with underscore and space", "bank_account main", nil},
		{"single char", "x", nil},
		{"max length", strings.Repeat("k", 64), nil},
		{"empty", "", ErrKeyNameLength},
		{"too long", strings.Repeat("k", 65), ErrKeyNameLength},
		{"invalid dot", "github.com", ErrKeyNameInvalidChars},
		{"invalid slash", "a/b", ErrKeyNameInvalidChars},
		{"blank", "   ", ErrKeyNameBlank},
		{"reserved auth marker", AuthMarker, ErrKeyNameReserved},
		{"auth marker is case sensitive", "VaultGuard-Auth", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := KeyName(tt.key)
			if err != tt.wantErr {
				t.Errorf("KeyName(%q) = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestKeyValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"simple", "a@b.com", nil},
		{"with spaces inside", "correct horse battery staple", nil},
		{"single char", "x", nil},
		{"max length", strings.Repeat("v", 1024), nil},
		{"empty", "", ErrKeyValueLength},
		{"too long", strings.Repeat("v", 1025), ErrKeyValueLength},
		{"blank", " \t ", ErrKeyValueBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := KeyValue(tt.value)
			if err != tt.wantErr {
				t.Errorf("KeyValue(%q) = %v, want %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
