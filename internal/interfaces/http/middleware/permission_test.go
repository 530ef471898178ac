package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/infrastructure/auth"
)

func routerWithClaims(claims *auth.Claims, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(JWTClaimsKey, claims)
		}
		c.Next()
	})
	router.GET("/guarded", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequirePermission_AllowsHolder(t *testing.T) {
	claims := &auth.Claims{UserID: "u1", Permissions: []string{"expense:approve", "expense:read"}}
	router := routerWithClaims(claims, RequirePermission(identity.PermExpenseApprove))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_DeniesNonHolder(t *testing.T) {
	claims := &auth.Claims{UserID: "u1", Permissions: []string{"expense:read"}}
	router := routerWithClaims(claims, RequirePermission(identity.PermExpenseApprove))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireAnyPermission_AnyOfSeveral(t *testing.T) {
	claims := &auth.Claims{UserID: "u1", Permissions: []string{"vendor_dashboard:view"}}
	router := routerWithClaims(claims, RequireAnyPermission(
		identity.PermDashboardView,
		identity.PermVendorDashboardView,
	))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_DeniesWithoutClaims(t *testing.T) {
	router := routerWithClaims(nil, RequirePermission(identity.PermClientRead))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
