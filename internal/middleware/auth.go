package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/auth"
	"github.com/modelmonitor/model-monitor/internal/config"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextToken     = "rawToken"
)

// AuthMiddleware gates every brand/response/rating route. A missing
// token is 401; a token that fails signature, expiry or denylist
// checks is 403, matching the API contract.
func AuthMiddleware(cfg *config.Config, denylist *auth.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "missing_authorization_header",
				"message":    "Access token required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error_code": "invalid_authorization_header",
				"message":    "Access token required",
			})
			return
		}

		tokenString := parts[1]

		claims, err := auth.ParseToken(cfg, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "invalid_token",
				"message":    "Invalid token",
			})
			return
		}

		if denylist.IsRevoked(c.Request.Context(), tokenString) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error_code": "invalid_token",
				"message":    "Invalid token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}
