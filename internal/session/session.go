// File path: internal/session/session.go

// Package session holds authentication state: the user directory, login and
// logout, and the token-to-user mapping handlers consult on each request.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidCredentials reports a failed login attempt. The message never
// distinguishes unknown email from wrong password.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Role is an authorization level attached to a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleAnalyst    Role = "analyst"
	RoleViewer     Role = "viewer"
)

// User is an authenticated identity. Roles drive endpoint authorization.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Roles      []Role `json:"roles"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u User) HasAnyRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CanApprove reports whether the user may decide on pending reports.
func (u User) CanApprove() bool {
	return u.HasAnyRole(RoleSupervisor, RoleAdmin)
}

// Storage maps opaque session tokens to users. Implementations must be safe
// for concurrent use.
type Storage interface {
	Get(token string) (User, bool)
	Set(token string, user User)
	Clear(token string)
}

// MemoryStorage is the default token store. Sessions do not survive a
// process restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	sessions map[string]User
}

var _ Storage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{sessions: make(map[string]User)}
}

func (m *MemoryStorage) Get(token string) (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.sessions[token]
	return user, ok
}

func (m *MemoryStorage) Set(token string, user User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = user
}

func (m *MemoryStorage) Clear(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

type account struct {
	user     User
	password string
}

// Service authenticates against the built-in user directory and issues
// bearer tokens.
type Service struct {
	storage Storage
	// Directory keyed by lowercase email.
	accounts map[string]account
}

// NewService builds a Service over the given token storage, seeded with the
// demo user directory.
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		accounts: map[string]account{
			"admin@neoview.com": {
				user: User{
					ID:         "usr-001",
					Name:       "Administrador Sistema",
					Email:      "admin@neoview.com",
					Department: "TI",
					Roles:      []Role{RoleAdmin},
				},
				password: "admin123",
			},
			"supervisor@neoview.com": {
				user: User{
					ID:         "usr-002",
					Name:       "Maria Silva",
					Email:      "supervisor@neoview.com",
					Department: "Operações",
					Roles:      []Role{RoleSupervisor},
				},
				password: "super123",
			},
			"analista@neoview.com": {
				user: User{
					ID:         "usr-003",
					Name:       "João Santos",
					Email:      "analista@neoview.com",
					Department: "Análise",
					Roles:      []Role{RoleAnalyst},
				},
				password: "analista123",
			},
		},
	}
}

// Login validates credentials and issues a fresh opaque token.
func (s *Service) Login(email, password string) (string, User, error) {
	acct, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok || acct.password != password {
		return "", User{}, ErrInvalidCredentials
	}
	token := uuid.NewString()
	s.storage.Set(token, acct.user)
	return token, acct.user, nil
}

// Logout invalidates a token. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.storage.Clear(token)
}

// UserFromToken resolves the user behind a bearer token.
func (s *Service) UserFromToken(token string) (User, bool) {
	if token == "" {
		return User{}, false
	}
	return s.storage.Get(token)
}

// DisplayName resolves a user id to a display name, or "" if unknown.
func (s *Service) DisplayName(userID string) string {
	for _, acct := range s.accounts {
		if acct.user.ID == userID {
			return acct.user.Name
		}
	}
	return ""
}
