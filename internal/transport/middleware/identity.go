package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID  = "X-User-ID"
	headerIsAdmin = "X-User-Admin"

	ctxUserID  = "userID"
	ctxIsAdmin = "isAdmin"
)

// Identity extracts the caller's identity from gateway-injected headers.
// Authentication itself happens upstream; this service only trusts the
// forwarded claims.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if idStr := c.GetHeader(headerUserID); idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
				c.Set(ctxUserID, id)
			}
		}

		if adminStr := c.GetHeader(headerIsAdmin); adminStr != "" {
			if isAdmin, err := strconv.ParseBool(adminStr); err == nil {
				c.Set(ctxIsAdmin, isAdmin)
			}
		}

		c.Next()
	}
}

// RequireIdentity rejects requests without a resolved user identity
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ctxUserID); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from non-admin callers
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) int64 {
	if id, exists := c.Get(ctxUserID); exists {
		if userID, ok := id.(int64); ok {
			return userID
		}
	}
	return 0
}

func IsAdmin(c *gin.Context) bool {
	if v, exists := c.Get(ctxIsAdmin); exists {
		if isAdmin, ok := v.(bool); ok {
			return isAdmin
		}
	}
	return false
}
