package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/Pratul75/report360/internal/application/identity"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// RoleHandler serves role permission administration. Grants written
// here override the built-in role matrix until cleared.
type RoleHandler struct {
	BaseHandler
	roleService *appidentity.RoleService
}

func NewRoleHandler(roleService *appidentity.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// RegisterRoutes mounts the role routes
func (h *RoleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/roles")
	roles.Use(middleware.RequirePermission(identity.PermSettingsUpdate))
	{
		roles.GET("", h.List)
		roles.GET("/:role/permissions", h.GetGrants)
		roles.PUT("/:role/permissions", h.ReplaceGrants)
	}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles := make([]string, len(identity.AllRoles))
	for i, role := range identity.AllRoles {
		roles[i] = string(role)
	}
	h.Success(c, roles)
}

func (h *RoleHandler) GetGrants(c *gin.Context) {
	role := identity.Role(c.Param("role"))
	if !role.IsValid() {
		h.BadRequest(c, "Unknown role: "+c.Param("role"))
		return
	}

	grants, err := h.roleService.GetGrants(c.Request.Context(), role)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grants)
}

func (h *RoleHandler) ReplaceGrants(c *gin.Context) {
	role := identity.Role(c.Param("role"))
	if !role.IsValid() {
		h.BadRequest(c, "Unknown role: "+c.Param("role"))
		return
	}

	var req appidentity.ReplaceRoleGrantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	grants, err := h.roleService.ReplaceGrants(c.Request.Context(), role, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grants)
}
