package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hotelfront/internal/handler/httperr"
	"hotelfront/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxTokenKey   = "access_token"
	ctxUserIDKey  = "user_id"
	ctxClaimsKey  = "jwt_claims"
	tokenCookie   = "token"
	bearerPrefix  = "Bearer "
	msgBadToken   = "Invalid or expired token"
	msgNeedsToken = "Access token required"
	msgNotAdmin   = "Admin token required"
)

// AuthMiddleware picks up the caller's backend token so it can be forwarded
// on upstream calls, and verifies admin tokens for local operations.
type AuthMiddleware struct {
	inspector *jwt.Inspector
	admin     *jwt.Verifier
}

func NewAuthMiddleware(inspector *jwt.Inspector, admin *jwt.Verifier) *AuthMiddleware {
	if admin != nil && !admin.Enabled() {
		slog.Warn("ADMIN_JWT_SECRET is not set, cache admin routes will reject every request")
	}
	return &AuthMiddleware{inspector: inspector, admin: admin}
}

// OptionalAuth lets anonymous requests through but rejects a token that is
// malformed or already expired.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		if !m.accept(c, token) {
			return
		}
		c.Next()
	}
}

// RequireAdmin only lets through tokens signed with the admin secret. The
// token is not forwarded anywhere, so its signature is checked here.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing token"), msgNeedsToken, nil)
			return
		}
		if m.admin == nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("admin verification not configured"), msgNotAdmin, nil)
			return
		}

		claims, err := m.admin.ValidateToken(token)
		if err != nil {
			slog.Warn("rejecting admin token", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msgNotAdmin, nil)
			return
		}

		c.Set(ctxUserIDKey, claims.SubjectID())
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": claims.SubjectID(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) accept(c *gin.Context, token string) bool {
	claims, err := m.inspector.Inspect(token)
	if err != nil {
		slog.Warn("rejecting bearer token", "error", err.Error(), "path", c.Request.URL.Path)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgBadToken, nil)
		return false
	}

	c.Set(ctxTokenKey, token)
	c.Set(ctxUserIDKey, claims.SubjectID())
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": claims.SubjectID(),
		"role":    claims.Role,
	})
	return true
}

// GetToken returns the accepted bearer token, or "" for anonymous requests.
func GetToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

func GetUserID(c *gin.Context) (string, bool) {
	id := c.GetString(ctxUserIDKey)
	return id, id != ""
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(h[len(bearerPrefix):])
	}
	token, _ := c.Cookie(tokenCookie)
	return token
}
