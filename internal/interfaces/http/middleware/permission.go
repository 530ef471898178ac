package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Pratul75/report360/internal/domain/identity"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	Logger *zap.Logger
}

// RequirePermission creates middleware that requires one permission
func RequirePermission(permission identity.Permission) gin.HandlerFunc {
	return RequireAnyPermission(permission)
}

// RequireAnyPermission creates middleware that passes when the caller
// holds at least one of the listed permissions.
func RequireAnyPermission(permissions ...identity.Permission) gin.HandlerFunc {
	return RequireAnyPermissionWithConfig(PermissionConfig{}, permissions...)
}

// RequireAnyPermissionWithConfig creates permission middleware with a
// custom configuration.
func RequireAnyPermissionWithConfig(cfg PermissionConfig, permissions ...identity.Permission) gin.HandlerFunc {
	codes := make([]string, len(permissions))
	for i, p := range permissions {
		codes[i] = string(p)
	}

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			denyPermission(c, cfg, codes, "no authentication claims found")
			return
		}

		if !claims.HasAnyPermission(codes...) {
			denyPermission(c, cfg, codes, "caller lacks required permission")
			return
		}

		c.Next()
	}
}

// HasPermission reports whether the caller holds the permission. For
// handler-level checks where middleware granularity is too coarse.
func HasPermission(c *gin.Context, permission identity.Permission) bool {
	claims := GetJWTClaims(c)
	if claims == nil {
		return false
	}
	return claims.HasPermission(string(permission))
}

func denyPermission(c *gin.Context, cfg PermissionConfig, required []string, reason string) {
	if cfg.Logger != nil {
		userID := ""
		if claims := GetJWTClaims(c); claims != nil {
			userID = claims.UserID
		}
		cfg.Logger.Warn("permission denied",
			zap.String("reason", reason),
			zap.String("user_id", userID),
			zap.Strings("required_permissions", required),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "FORBIDDEN",
			"message": "Access denied: insufficient permissions",
		},
	})
}
