package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recruiteryu/platform/internal/auth"
	"github.com/recruiteryu/platform/internal/services"
)

const sessionKey = "session"

// AuthMiddleware resolves the bearer token into a Session and feeds the
// access gate. The handlers never re-derive identity themselves; they read
// the session this middleware attached.
type AuthMiddleware struct {
	Tokens *auth.Tokens
	Users  *services.UserService
}

func NewAuthMiddleware(tokens *auth.Tokens, users *services.UserService) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens, Users: users}
}

// RequireAuth validates the Authorization header and stores the resolved
// session on the request context. Failures always point the client back at
// the login route, never at an error page.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortToLogin(c)
			return
		}

		email, err := m.Tokens.Verify(token)
		if err != nil {
			abortToLogin(c)
			return
		}

		user, err := m.Users.GetByEmail(email)
		if err != nil {
			abortToLogin(c)
			return
		}

		c.Set(sessionKey, services.SessionFor(user))
		c.Next()
	}
}

// RequireRole runs the same access gate the dashboards use. A session with
// the wrong role is sent to its own dashboard; anything unresolvable goes
// to login.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := auth.Authorize(CurrentSession(c), false, role)
		switch decision.Kind {
		case auth.DecisionAllow:
			c.Next()
		case auth.DecisionRedirectToDashboard:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Not authorized",
				"redirect": decision.Target,
			})
		default:
			abortToLogin(c)
		}
	}
}

// CurrentSession returns the session RequireAuth attached, or nil on a
// public route.
func CurrentSession(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}

func abortToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Could not validate credentials",
		"redirect": auth.LoginRoute,
	})
}
