package handler

import (
	"net/http"

	"github.com/JoelOnyedika/flutterpay/internal/auth"
	"github.com/JoelOnyedika/flutterpay/internal/middleware"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
	"github.com/JoelOnyedika/flutterpay/pkg/validator"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	service   *auth.Service
	validator *validator.Validator
	logger    logger.Logger
}

func NewAuthHandler(service *auth.Service, val *validator.Validator, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: val,
		logger:    log,
	}
}

// ValidateProfile checks the first signup page so the client can flip
// to the password page without creating anything.
func (h *AuthHandler) ValidateProfile(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ValidateProfile(req); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// Signup registers an account and returns a token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Signup(req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Login signs a user in. Unknown emails get a demo identity.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.service.User(userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	user.PasswordHash = ""
	respondJSON(w, http.StatusOK, user)
}
