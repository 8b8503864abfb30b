package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

func (s *Server) issueToken(userID string) (string, int64, error) {
	exp := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub": userID,
		"iss": "melfak-mockapi",
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return token, exp.Unix(), nil
}

// requireAuth guards everything outside /Authentication. Missing or invalid
// bearer tokens answer 401 with the envelope shape intact.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(w, r)
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		_, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			unauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if req.Email != s.store.user.Email ||
		bcrypt.CompareHashAndPassword(s.store.passwordHash, []byte(req.Password)) != nil {
		fail(w, r, http.StatusBadRequest, "invalid email or password")
		return
	}

	token, exp, err := s.issueToken(s.store.user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	s.store.user.LastLogin = &now
	user := s.store.user

	ok(w, r, "login successful", catalog.LoginResult{
		ID:        user.ID,
		TokenType: "Bearer",
		Token:     token,
		Expires:   exp,
		User:      &user,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if req.Email != s.store.user.Email {
		fail(w, r, http.StatusBadRequest, "email not registered")
		return
	}
	ok(w, r, "otp sent", catalog.VerifyResult{OtpSent: true})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Otp         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if req.Email != s.store.user.Email || req.Otp != s.store.otp {
		fail(w, r, http.StatusBadRequest, "invalid otp")
		return
	}
	if len(req.NewPassword) < 6 {
		fail(w, r, http.StatusBadRequest, "password too short")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}
	s.store.passwordHash = hash
	ok(w, r, "password changed", nil)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	user := s.store.user
	s.store.mu.Unlock()
	ok(w, r, "ok", user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email        string `json:"email"`
		MobileNumber string `json:"mobileNumber"`
		FullName     string `json:"fullName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.FullName == "" {
		fail(w, r, http.StatusBadRequest, "email and full name are required")
		return
	}

	s.store.mu.Lock()
	s.store.user.Email = req.Email
	s.store.user.MobileNumber = req.MobileNumber
	s.store.user.FullName = req.FullName
	s.store.user.UpdatedAt = time.Now().UTC()
	user := s.store.user
	s.store.mu.Unlock()

	ok(w, r, "profile updated", user)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if bcrypt.CompareHashAndPassword(s.store.passwordHash, []byte(req.CurrentPassword)) != nil {
		fail(w, r, http.StatusBadRequest, "current password is wrong")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}
	s.store.passwordHash = hash
	ok(w, r, "password updated", s.store.user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.store.mu.Lock()
	now := time.Now().UTC()
	s.store.user.LastLogout = &now
	s.store.mu.Unlock()
	ok(w, r, "logged out", nil)
}
