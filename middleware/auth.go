package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motel-backend/services"
)

const (
	ContextUserID    = "userId"
	ContextUserEmail = "userEmail"
)

// AuthRequired parses the Bearer token and stores the account id and email
// on the context. Requests without a valid token get 401; the client
// redirects those to sign-up.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "you must be logged in to make a booking",
			})
			return
		}

		userID, email, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired session",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// CurrentUser reads the authenticated account off the context.
func CurrentUser(c *gin.Context) (uint, string, bool) {
	idVal, ok := c.Get(ContextUserID)
	if !ok {
		return 0, "", false
	}
	id, ok := idVal.(uint)
	if !ok || id == 0 {
		return 0, "", false
	}
	email, _ := c.Get(ContextUserEmail)
	emailStr, _ := email.(string)
	return id, emailStr, true
}
