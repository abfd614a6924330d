package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/api/internal/auth"
	"github.com/devfolio/api/pkg/metrics"
	"github.com/devfolio/api/pkg/middleware"
)

// LoginRequest carries the owner credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler exposes login and identity introspection for the single owner.
type AuthHandler struct {
	gate         *auth.Gate
	loginLimiter gin.HandlerFunc
}

// NewAuthHandler builds the handler. loginLimiter may be nil; when set it is
// applied to the login route only, to slow credential brute force.
func NewAuthHandler(gate *auth.Gate, loginLimiter gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{gate: gate, loginLimiter: loginLimiter}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	a := rg.Group("/auth")
	login := []gin.HandlerFunc{h.Login}
	if h.loginLimiter != nil {
		login = []gin.HandlerFunc{h.loginLimiter, h.Login}
	}
	a.POST("/login", login...)
	a.GET("/me", requireAuth, h.Me)
}

// Login exchanges the owner credentials for a bearer token. Logout has no
// server-side counterpart: clients discard the token, and an unexpired token
// replayed afterwards still validates.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	metrics.LoginAttempts.Inc()
	token, id, err := h.gate.IssueToken(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server auth is not configured"})
			return
		}
		metrics.LoginFailures.Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": id})
}

// Me returns the identity encoded in the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": id})
}
