package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// Session owns the signed-in state: bearer token plus user profile, persisted
// to a JSON file so the dashboard survives restarts. Lifecycle is explicit:
// Load on start, Set on login, Clear on logout or any 401.
type Session struct {
	mu    sync.RWMutex
	path  string
	state state
}

type state struct {
	AccessToken string        `json:"accessToken"`
	User        *catalog.User `json:"user,omitempty"`
	LoggedInAt  time.Time     `json:"loggedInAt,omitempty"`
}

func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the persisted session. A missing file is a signed-out state,
// not an error.
func (s *Session) Load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		// A corrupt session file is treated as signed out.
		return nil
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

func (s *Session) Set(token string, user *catalog.User) error {
	s.mu.Lock()
	s.state = state{
		AccessToken: token,
		User:        user,
		LoggedInAt:  time.Now(),
	}
	st := s.state
	s.mu.Unlock()
	return s.persist(st)
}

// SetUser refreshes the cached profile without touching the token.
func (s *Session) SetUser(user *catalog.User) error {
	s.mu.Lock()
	s.state.User = user
	st := s.state
	s.mu.Unlock()
	return s.persist(st)
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.state = state{}
	s.mu.Unlock()
	_ = os.Remove(s.path)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

func (s *Session) User() (*catalog.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil, false
	}
	return s.state.User, true
}

// Authenticated reports whether a token is present and, when the token is a
// JWT with an exp claim, not yet expired. The server owns verification; the
// unverified parse only avoids presenting a token we already know is dead.
func (s *Session) Authenticated() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true // opaque token, let the server decide
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Now().Before(exp.Time)
}

func (s *Session) persist(st state) error {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
