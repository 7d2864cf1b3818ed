package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/storefront/internal/kv"
)

// Role is the account role attached to a session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var ErrInvalidRole = errors.New("auth: role must be admin or user")

// Persisted session keys.
const (
	keyEmail = "userEmail"
	keyRole  = "userRole"
	keyName  = "userName"
)

// User is the identity carried by an authenticated session. Name is optional.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role"`
}

// Session holds the current user, if any, and mirrors it to durable
// key-value storage so a restart can restore it. Cart and order state have no
// such persistence; only the identity survives.
type Session struct {
	mu      sync.RWMutex
	user    *User
	storage kv.Store
}

func NewSession(storage kv.Store) *Session {
	return &Session{storage: storage}
}

// Restore reconstructs the session from storage. It requires both email and
// role; partial state (for example a role without an email) leaves the
// session unauthenticated. Intended to run once at process start.
func (s *Session) Restore() error {
	email, haveEmail, err := s.storage.Get(keyEmail)
	if err != nil {
		return fmt.Errorf("auth: failed to read persisted email: %w", err)
	}
	role, haveRole, err := s.storage.Get(keyRole)
	if err != nil {
		return fmt.Errorf("auth: failed to read persisted role: %w", err)
	}

	if !haveEmail || !haveRole {
		return nil
	}

	name, _, err := s.storage.Get(keyName)
	if err != nil {
		return fmt.Errorf("auth: failed to read persisted name: %w", err)
	}

	s.mu.Lock()
	s.user = &User{Email: email, Role: Role(role), Name: name}
	s.mu.Unlock()

	log.Info().Str("email", email).Str("role", role).Msg("auth: session restored")
	return nil
}

// Login replaces the current session and persists it. The name key is only
// written when a name is given.
func (s *Session) Login(email string, role Role, name string) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	if err := s.storage.Set(keyEmail, email); err != nil {
		return fmt.Errorf("auth: failed to persist email: %w", err)
	}
	if err := s.storage.Set(keyRole, string(role)); err != nil {
		return fmt.Errorf("auth: failed to persist role: %w", err)
	}
	if name != "" {
		if err := s.storage.Set(keyName, name); err != nil {
			return fmt.Errorf("auth: failed to persist name: %w", err)
		}
	}

	s.mu.Lock()
	s.user = &User{Email: email, Role: role, Name: name}
	s.mu.Unlock()

	log.Info().Str("email", email).Str("role", string(role)).Msg("auth: user logged in")
	return nil
}

// Logout clears the in-memory session and removes every persisted key.
func (s *Session) Logout() error {
	for _, key := range []string{keyEmail, keyRole, keyName} {
		if err := s.storage.Delete(key); err != nil {
			return fmt.Errorf("auth: failed to remove persisted %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	log.Info().Msg("auth: user logged out")
	return nil
}

// User returns a copy of the current user, or false when unauthenticated.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// IsAdmin reports whether the current user holds the admin role. It is
// derived, never stored.
func (s *Session) IsAdmin() bool {
	user, ok := s.User()
	return ok && user.Role == RoleAdmin
}
