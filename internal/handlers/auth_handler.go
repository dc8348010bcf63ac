package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"projectcenter/internal/config"
	"projectcenter/internal/middleware"
	"projectcenter/internal/models"
	"projectcenter/internal/services"
)

type Authenticator interface {
	Authenticate(email, password string) (string, error)
}

type AuthHandler struct {
	identity Authenticator
	cfg      *config.Config
	revoked  *middleware.RevocationList
	v        *validator.Validate
}

func NewAuthHandler(identity Authenticator, cfg *config.Config, revoked *middleware.RevocationList) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		cfg:      cfg,
		revoked:  revoked,
		v:        validator.New(),
	}
}

// @Tags Auth
// @Summary Sign in
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	email, err := h.identity.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDomainNotAllowed):
			writeJSONErrorResponse(w, http.StatusUnauthorized, "domain_not_allowed", "This email domain is not allowed to sign in")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeJSONErrorResponse(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		default:
			log.Printf("Login failed for %s: %v", req.Email, err)
			writeJSONErrorResponse(w, http.StatusInternalServerError, "login_failed", "Failed to login")
		}
		return
	}

	expiresIn := h.cfg.JWTExpiresInSeconds
	if expiresIn <= 0 {
		expiresIn = 86400
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(expiresIn) * time.Second).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "login_failed", "Failed to login")
		return
	}

	log.Printf("User %s signed in", email)
	writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   expiresIn,
		Email:       email,
	})
}

// @Tags Auth
// @Summary Sign out
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.revoked != nil {
		h.revoked.Revoke(middleware.TokenID(r.Context()), middleware.ExpiresAt(r.Context()))
	}
	writeJSONMessage(w, http.StatusOK, "Signed out")
}

// @Tags Auth
// @Summary Current session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.SessionUser
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SessionUser{
		Email:     middleware.Email(r.Context()),
		ExpiresAt: middleware.ExpiresAt(r.Context()).Unix(),
	})
}
