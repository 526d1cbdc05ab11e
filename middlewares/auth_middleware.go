package middlewares

import (
	"context"
	"net/http"
	"strings"

	"deeprealties/backend/utils"
	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

func bearer(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	t := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return t, t != ""
}

func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, ok := bearer(c)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		claims, err := utils.ParseJWT(secret, t)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through untouched.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if t, ok := bearer(c); ok {
			if claims, err := utils.ParseJWT(secret, t); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Subject)
	c.Set(CtxRole, claims.Role)
}

// RoleLookup returns the stored role and active flag for a user. Roles are
// re-read on every guarded request so a demoted or deactivated admin loses
// access before the token expires.
type RoleLookup func(ctx context.Context, userID int64) (role string, active bool, err error)

func RequireRole(lookup RoleLookup, detail string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64(CtxUserID)
		role, active, err := lookup(c.Request.Context(), uid)
		if err != nil || !active || !contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": detail})
			return
		}
		c.Set(CtxRole, role)
		c.Next()
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
