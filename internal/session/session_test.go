package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestLoadMissingFileIsSignedOut(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("expected signed-out state for missing file")
	}
}

func TestLoadCorruptFileIsSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := New(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Token() != "" {
		t.Fatal("corrupt file should not yield a token")
	}
}

func TestSetPersistsAcrossLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	token := signedToken(t, time.Now().Add(time.Hour))
	user := &catalog.User{ID: "user-1", Email: "admin@melfak.local", FullName: "Admin"}

	s := New(path)
	if err := s.Set(token, user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Token() != token {
		t.Fatalf("token = %q, want %q", reloaded.Token(), token)
	}
	got, hasUser := reloaded.User()
	if !hasUser || got.Email != "admin@melfak.local" {
		t.Fatalf("user = %+v (present=%v)", got, hasUser)
	}
	if !reloaded.Authenticated() {
		t.Fatal("expected authenticated state")
	}
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := New(path)
	if err := s.Set(signedToken(t, time.Now().Add(time.Hour)), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s.Clear()
	if s.Authenticated() {
		t.Fatal("expected signed-out state after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("session file still present: %v", err)
	}
}

func TestExpiredTokenIsNotAuthenticated(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Set(signedToken(t, time.Now().Add(-time.Minute)), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("expired token should not count as authenticated")
	}
}

func TestOpaqueTokenCountsAsAuthenticated(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Set("opaque-api-key", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !s.Authenticated() {
		t.Fatal("opaque token should be presented to the server")
	}
}

func TestSetUserKeepsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	token := signedToken(t, time.Now().Add(time.Hour))

	s := New(path)
	if err := s.Set(token, &catalog.User{ID: "user-1", FullName: "Old Name"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.SetUser(&catalog.User{ID: "user-1", FullName: "New Name"}); err != nil {
		t.Fatalf("SetUser: %v", err)
	}

	if s.Token() != token {
		t.Fatal("SetUser must not touch the token")
	}
	user, _ := s.User()
	if user.FullName != "New Name" {
		t.Fatalf("FullName = %q, want New Name", user.FullName)
	}
}
