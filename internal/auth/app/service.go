package app

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dwikikusuma/dohsarpay/internal/auth/domain"
)

var ErrBadCredentials = errors.New("invalid username or password")

// credential is an exact username/password pair. This is a demo login —
// two fixed identities, no hashing, no expiry — and is documented as a
// placeholder, not a security boundary.
type credential struct {
	password string
	identity domain.Identity
}

var credentials = map[string]credential{
	"admin": {password: "admin123", identity: domain.Identity{Role: domain.RoleAdmin, Name: "Store Admin"}},
	"user":  {password: "1234", identity: domain.Identity{Role: domain.RoleCustomer, Name: "Demo Customer"}},
}

// Service validates logins and keeps the live session registry. Sessions
// are process-lifetime only.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]domain.Identity
}

func NewService() *Service {
	return &Service{
		sessions: make(map[string]domain.Identity),
	}
}

// Login checks the pair against the fixed identities. A mismatch returns
// ErrBadCredentials and touches nothing: any session already live stays
// live.
func (s *Service) Login(username, password string) (domain.Session, error) {
	cred, ok := credentials[username]
	if !ok || cred.password != password {
		return domain.Session{}, ErrBadCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = cred.identity
	s.mu.Unlock()

	return domain.Session{Token: token, Identity: cred.identity}, nil
}

// Identify resolves a session token to its identity. Unknown or empty
// tokens are anonymous.
func (s *Service) Identify(token string) (domain.Identity, bool) {
	if token == "" {
		return domain.Identity{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessions[token]
	return id, ok
}

// Logout drops the session; logging out an unknown token is a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
