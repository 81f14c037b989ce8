package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/dtos"
	"github.com/recruiteryu/platform/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.Tokens
}

func NewAuthHandler(users *services.UserService, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// Signup is POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	// Reject unknown roles at the door instead of defaulting anyone upward.
	if req.Role != "" && !auth.ParseRole(req.Role).Known() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	user, err := h.Users.Signup(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

// Login is POST /api/auth/login. It returns the bearer token plus the user
// payload the session store keeps for the visit.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         services.SessionFor(user),
	})
}

// Me is GET /api/auth/me, used to restore a session from a stored token.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentSession(c))
}
