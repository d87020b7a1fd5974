// Package vault implements the VaultGuard session controller: registration,
// master-password login and CRUD over a user's encrypted entries.
//
// The master password is never stored or hashed. Registration encrypts a
// fixed sentinel under the derived key as the auth-marker entry; login
// succeeds exactly when that entry decrypts.
package vault

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Brydon13/vaultguard/internal/crypto"
	"github.com/Brydon13/vaultguard/internal/logging"
	"github.com/Brydon13/vaultguard/internal/store"
	"github.com/Brydon13/vaultguard/internal/validation"
)

// AuthMarker is the reserved entry name used to verify the master password.
const AuthMarker = validation.AuthMarker

// authSentinel is the plaintext sealed under the auth marker. Its decrypted
// value is never compared; only tag verification matters.
const authSentinel = "dummy"

// Session is one logged-in user. It owns the derived key; nothing else in
// the process can decrypt that user's entries. The zero value and a nil
// Session are both logged out.
type Session struct {
	// ID correlates log lines for this session. It carries no secret.
	ID       string
	Username string
	key      *crypto.Key
}

// Active reports whether the session is logged in.
func (s *Session) Active() bool {
	return s != nil && s.key.Alive()
}

// Logout destroys the session key. It is safe to call on a nil or already
// logged-out session.
func (s *Session) Logout() {
	if s == nil {
		return
	}
	s.key.Destroy()
	s.key = nil
	s.Username = ""
}

// Manager runs controller operations against a Store. It keeps no per-user
// state: every operation reloads the record.
type Manager struct {
	store  store.Store
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for operational events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Manager backed by st.
func New(st store.Store, opts ...Option) *Manager {
	m := &Manager{
		store:  st,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register creates a vault for username and returns a logged-in session.
// A taken username yields ErrExists.
func (m *Manager) Register(username, password string) (*Session, error) {
	if err := validation.Credentials(username, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, err := m.store.Load(username)
	switch {
	case err == nil:
		return nil, ErrExists
	case !errors.Is(err, store.ErrNotFound):
		m.logger.Warn("register: load failed", "user", username, "error", err)
		return nil, mapStoreError("load", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key, err := crypto.DeriveKey([]byte(password), salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	marker, err := crypto.Encrypt(key, []byte(authSentinel))
	if err != nil {
		crypto.ZeroBytes(key)
		return nil, fmt.Errorf("create auth marker: %w", err)
	}

	rec := &store.VaultRecord{
		Salt:    salt,
		Entries: []store.VaultEntry{{Name: AuthMarker, Payload: marker}},
	}
	if err := m.store.Save(username, rec); err != nil {
		crypto.ZeroBytes(key)
		m.logger.Warn("register: save failed", "user", username, "error", err)
		return nil, mapStoreError("save", err)
	}

	s, err := newSession(username, key)
	if err != nil {
		return nil, err
	}
	m.logger.Info("vault registered", "user", username, "session_id", s.ID)
	return s, nil
}

// Login verifies password by decrypting the auth marker and returns a
// logged-in session. Unknown users and wrong passwords both yield
// ErrAuthFailed, as does a record whose marker is missing or corrupt.
func (m *Manager) Login(username, password string) (*Session, error) {
	if err := validation.Credentials(username, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rec, err := m.store.Load(username)
	if errors.Is(err, store.ErrNotFound) {
		m.logger.Info("login failed", "user", username)
		return nil, ErrAuthFailed
	}
	if err != nil {
		m.logger.Warn("login: load failed", "user", username, "error", err)
		return nil, mapStoreError("load", err)
	}

	i := rec.Index(AuthMarker)
	if i < 0 {
		m.logger.Info("login failed", "user", username)
		return nil, ErrAuthFailed
	}

	key, err := crypto.DeriveKey([]byte(password), rec.Salt)
	if err != nil {
		m.logger.Info("login failed", "user", username)
		return nil, ErrAuthFailed
	}

	if _, err := crypto.Decrypt(key, rec.Entries[i].Payload); err != nil {
		crypto.ZeroBytes(key)
		m.logger.Info("login failed", "user", username)
		return nil, ErrAuthFailed
	}

	s, err := newSession(username, key)
	if err != nil {
		return nil, err
	}
	m.logger.Info("logged in", "user", username, "session_id", s.ID)
	return s, nil
}

// newSession seals key into a session. key is wiped.
func newSession(username string, key []byte) (*Session, error) {
	k, err := crypto.NewKey(key)
	if err != nil {
		crypto.ZeroBytes(key)
		return nil, fmt.Errorf("seal session key: %w", err)
	}
	return &Session{
		ID:       uuid.NewString(),
		Username: username,
		key:      k,
	}, nil
}

// load reads the session user's record.
func (m *Manager) load(s *Session) (*store.VaultRecord, error) {
	if !s.Active() {
		return nil, ErrNotLoggedIn
	}
	rec, err := m.store.Load(s.Username)
	if err != nil {
		m.logger.Warn("load failed", "session_id", s.ID, "error", err)
		return nil, mapStoreError("load", err)
	}
	return rec, nil
}

// save writes the whole record back for the session user.
func (m *Manager) save(s *Session, rec *store.VaultRecord) error {
	if err := m.store.Save(s.Username, rec); err != nil {
		m.logger.Warn("save failed", "session_id", s.ID, "error", err)
		return mapStoreError("save", err)
	}
	return nil
}
