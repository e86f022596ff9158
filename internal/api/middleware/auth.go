package middleware

import (
	"net/http"
	"strings"

	"storehub/internal/api/models"
	"storehub/internal/api/service"
	"storehub/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware is the authentication gate. It checks for a valid JWT in the
// Authorization header, rejects revoked tokens, and attaches the caller's
// identity to the request context. blacklist may be nil.
func AuthMiddleware(authService service.AuthService, blacklist auth.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		// Tokens issued before the user's last password change are dead.
		if blacklist != nil && claims.IssuedAt != nil {
			revoked, err := blacklist.IsUserInvalidated(c.Request.Context(), claims.UserID, claims.IssuedAt.Time)
			if err == nil && revoked {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "token has been revoked"})
				c.Abort()
				return
			}
		}

		// Set user info in context for handlers to use
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireRole is the authorization gate: the caller's role must be a member
// of the given set. An empty set admits any authenticated identity.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		roleValue, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"message": "role not found in token"})
			c.Abort()
			return
		}

		userRole, ok := roleValue.(models.Role)
		if !ok || !userRole.Valid() {
			c.JSON(http.StatusForbidden, gin.H{"message": "invalid role"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "insufficient permissions"})
		c.Abort()
	}
}

// CallerID returns the authenticated user's ID from the gin context.
func CallerID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}
