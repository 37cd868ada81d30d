package middleware

import (
	"net/http"

	"matchapp/services"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "token"

// SessionAuth resolves the session cookie into an account id. It answers
// "who claims to be whom" only; it never touches the credential store.
func SessionAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided. Access denied."})
			return
		}

		userID, err := tokens.VerifySessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

// RequireRole re-fetches the account on every request and checks its
// current role against the allowed set. There is no role cache anywhere:
// demoting an admin locks them out on their very next request.
func RequireRole(users services.UserStore, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("userId").(string)

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if err == services.ErrUserNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Role check error"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set("role", user.Role)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access Denied: You do not have permission"})
	}
}
