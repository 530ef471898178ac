package handler

import (
	"github.com/gin-gonic/gin"

	appdashboard "github.com/Pratul75/report360/internal/application/dashboard"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// DashboardHandler serves the role dashboards. The vendor dashboard
// scopes to the caller's vendor binding from the JWT; staff without a
// binding pass vendor_id explicitly.
type DashboardHandler struct {
	BaseHandler
	dashboardService *appdashboard.Service
}

func NewDashboardHandler(dashboardService *appdashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes mounts the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboards := rg.Group("/dashboards")
	{
		dashboards.GET("/admin", middleware.RequirePermission(identity.PermDashboardView), h.Admin)
		dashboards.GET("/vendor", middleware.RequirePermission(identity.PermVendorDashboardView), h.Vendor)
		dashboards.GET("/client-servicing", middleware.RequirePermission(identity.PermClientServicingDashboardView), h.ClientServicing)
		dashboards.GET("/driver", middleware.RequirePermission(identity.PermDriverDashboardView), h.Driver)
	}
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	dashboard, err := h.dashboardService.Admin(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}

func (h *DashboardHandler) Vendor(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor binding")
		return
	}
	if vendorID == nil {
		// Staff callers pick the vendor explicitly.
		id, ok := parseUUID(c.Query("vendor_id"))
		if !ok {
			h.BadRequest(c, "vendor_id query parameter is required")
			return
		}
		vendorID = &id
	}

	dashboard, err := h.dashboardService.Vendor(c.Request.Context(), *vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}

func (h *DashboardHandler) ClientServicing(c *gin.Context) {
	var query appdashboard.ClientServicingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dashboard, err := h.dashboardService.ClientServicing(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}

func (h *DashboardHandler) Driver(c *gin.Context) {
	driverID, ok := parseUUID(c.Query("driver_id"))
	if !ok {
		h.BadRequest(c, "driver_id query parameter is required")
		return
	}

	dashboard, err := h.dashboardService.Driver(c.Request.Context(), driverID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}
