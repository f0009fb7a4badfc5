// Package auth implements the demo sign-in: accounts live in memory,
// passwords are bcrypt-hashed, and tokens are ordinary HS256 JWTs. The
// one unusual rule is that login never turns a stranger away; an email
// nobody registered gets a throwaway demo identity, because the product
// has no real backend to defer to yet.
package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// SignupRequest carries both form pages of the signup dialog.
type SignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeTerms      bool   `json:"agree_terms"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	SessionID   uuid.UUID   `json:"session_id"`
	User        domain.User `json:"user"`
}

// Sessions opens a working session at login; the session id is baked
// into the token so the flows know where the user's drafts live.
type Sessions interface {
	Open(userID uuid.UUID) uuid.UUID
}

type Service struct {
	jwtSecret string
	jwtExpiry time.Duration
	sessions  Sessions
	logger    logger.Logger

	mu    sync.RWMutex
	users map[string]*domain.User // keyed by lowercased email
}

func NewService(jwtSecret string, jwtExpiry time.Duration, sessions Sessions, log logger.Logger) *Service {
	return &Service{
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		sessions:  sessions,
		logger:    log,
		users:     make(map[string]*domain.User),
	}
}

// ValidateProfile checks the first signup page. The form reports one
// generic message when anything is missing, so that is all we return.
func (s *Service) ValidateProfile(req SignupRequest) error {
	if strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return errors.Wrap(errors.ErrValidationFailed, "Please fill in all fields")
	}
	return nil
}

// Signup validates both pages and creates the account.
func (s *Service) Signup(req SignupRequest) (*TokenResponse, error) {
	if err := s.ValidateProfile(req); err != nil {
		return nil, err
	}
	if req.Password == "" || req.ConfirmPassword == "" {
		return nil, errors.Wrap(errors.ErrValidationFailed, "Please fill in all fields")
	}
	if req.Password != req.ConfirmPassword {
		return nil, errors.ErrPasswordMismatch
	}
	if !req.AgreeTerms {
		return nil, errors.ErrTermsNotAccepted
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return nil, errors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.mu.Unlock()
		return nil, errors.Wrap(err, "hash password")
	}

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.users[email] = user
	s.mu.Unlock()

	s.logger.Info("user registered", map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})
	return s.issueToken(user)
}

// Login authenticates a registered account, or fabricates a demo
// identity when the email is unknown. A wrong password on a real
// account still fails; the open door is only for strangers.
func (s *Service) Login(req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, errors.Wrap(errors.ErrValidationFailed, "Please fill in all fields")
	}

	s.mu.Lock()
	user, ok := s.users[email]
	if ok {
		// Demo identities have no password and stay open.
		if user.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
				s.mu.Unlock()
				return nil, errors.ErrInvalidCredentials
			}
		}
	} else {
		user = &domain.User{
			ID:        uuid.New(),
			FullName:  demoName(email),
			Email:     email,
			CreatedAt: time.Now(),
		}
		s.users[email] = user
	}
	now := time.Now()
	user.LastLogin = &now
	s.mu.Unlock()

	s.logger.Info("user logged in", map[string]interface{}{
		"user_id":    user.ID.String(),
		"email":      user.Email,
		"registered": ok,
	})
	return s.issueToken(user)
}

// User returns the stored account for an id.
func (s *Service) User(id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, errors.ErrInvalidCredentials
}

func (s *Service) issueToken(user *domain.User) (*TokenResponse, error) {
	sessionID := s.sessions.Open(user.ID)
	expiresAt := time.Now().Add(s.jwtExpiry)
	claims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"session_id": sessionID.String(),
		"email":      user.Email,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	out := *user
	out.PasswordHash = ""
	return &TokenResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		SessionID:   sessionID,
		User:        out,
	}, nil
}

// demoName derives a display name from the email's local part.
func demoName(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	if local == "" {
		return "Demo User"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
