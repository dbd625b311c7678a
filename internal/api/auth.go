package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/store"
)

// AuthHandler serves registration, login, logout, and profile.
type AuthHandler struct {
	store  *store.Store
	tokens *AuthTokens
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(s *store.Store, tokens *AuthTokens) *AuthHandler {
	return &AuthHandler{store: s, tokens: tokens}
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries a session token and the logged-in user.
type SessionResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register creates a new account and returns a session for it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.store.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		Conflict(c, err.Error())
		return
	}
	if err != nil {
		InternalError(c, "registration failed")
		return
	}

	token, err := h.tokens.Generate(*user)
	if err != nil {
		InternalError(c, "failed to issue session token")
		return
	}
	Success(c, SessionResponse{Token: token, User: user})
}

// Login authenticates a credential pair and returns a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		InternalError(c, "login failed")
		return
	}

	token, err := h.tokens.Generate(*user)
	if err != nil {
		InternalError(c, "failed to issue session token")
		return
	}
	Success(c, SessionResponse{Token: token, User: user})
}

// Logout tears down the session state for the authenticated account.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context(), CurrentEmail(c)); err != nil {
		InternalError(c, "logout failed")
		return
	}
	Success(c, nil)
}

// Profile returns the authenticated session user.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.store.Profile(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		NotFound(c, "account not found")
		return
	}
	Success(c, user)
}
