// Package session owns the authenticated-user identity: login, register,
// logout and profile edits against the user directory, with the current user
// persisted to durable storage and restored on startup.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/models"
	"github.com/clipstream/backend/internal/storage"
)

// storageKey is the durable entry holding the serialized current user.
const storageKey = "user"

// Store tracks the current session. All operations are best-effort: storage
// failures are logged and the session simply behaves as absent.
type Store struct {
	source mockdata.Source
	state  storage.Store
	logger *slog.Logger

	mu            sync.RWMutex
	current       *models.User
	authenticated bool
}

// NewStore constructs a session store on top of the provided data source and
// durable state store.
func NewStore(source mockdata.Source, state storage.Store, logger *slog.Logger) *Store {
	if source == nil {
		panic("session: data source must not be nil")
	}
	if state == nil {
		panic("session: state store must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		source: source,
		state:  state,
		logger: logger,
	}
}

// Hydrate restores a previously persisted session. Read or decode failures
// are swallowed and leave the store unauthenticated.
func (s *Store) Hydrate(ctx context.Context) {
	raw, err := s.state.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load persisted session", "error", err)
		}
		return
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("failed to decode persisted session", "error", err)
		return
	}

	s.mu.Lock()
	s.current = &user
	s.authenticated = true
	s.mu.Unlock()
}

// Login resolves the username against the directory and, on a match, makes
// that user the current session. The password is accepted but never verified;
// any non-empty value succeeds when the username exists.
func (s *Store) Login(ctx context.Context, username, _ string) bool {
	user, err := s.source.Authenticate(ctx, username)
	if err != nil {
		if !errors.Is(err, mockdata.ErrUnknownUser) {
			s.logger.Warn("login lookup failed", "username", username, "error", err)
		}
		return false
	}

	s.mu.Lock()
	s.current = &user
	s.authenticated = true
	s.mu.Unlock()

	s.persist(ctx, user)
	return true
}

// Register creates a new account and signs it in. It returns false when the
// username already exists (case-insensitive) in the directory.
func (s *Store) Register(ctx context.Context, username, email, password string) bool {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return false
	}

	user, err := s.source.CreateAccount(ctx, username, email, string(hash))
	if err != nil {
		if !errors.Is(err, mockdata.ErrUsernameTaken) {
			s.logger.Warn("registration failed", "username", username, "error", err)
		}
		return false
	}

	s.mu.Lock()
	s.current = &user
	s.authenticated = true
	s.mu.Unlock()

	s.persist(ctx, user)
	return true
}

// Logout clears the current session and removes the persisted entry.
func (s *Store) Logout(ctx context.Context) {
	if err := s.state.Delete(ctx, storageKey); err != nil {
		s.logger.Warn("failed to remove persisted session", "error", err)
	}

	s.mu.Lock()
	s.current = nil
	s.authenticated = false
	s.mu.Unlock()
}

// UpdateProfile merges the set fields into the current user and re-persists.
// It is a no-op without a signed-in user. Author snapshots already embedded
// in videos keep their original values.
func (s *Store) UpdateProfile(ctx context.Context, update models.UserUpdate) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	merged := update.Apply(*s.current)
	s.current = &merged
	s.mu.Unlock()

	s.persist(ctx, merged)
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) persist(ctx context.Context, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("failed to encode session", "error", err)
		return
	}
	if err := s.state.Put(ctx, storageKey, raw); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}
}
