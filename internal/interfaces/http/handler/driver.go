package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// DriverHandler serves drivers, their profiles and nested assignment
// and KM log listings.
type DriverHandler struct {
	BaseHandler
	driverService     *appfleet.DriverService
	assignmentService *appfleet.AssignmentService
	kmLogService      *appfleet.KMLogService
}

func NewDriverHandler(
	driverService *appfleet.DriverService,
	assignmentService *appfleet.AssignmentService,
	kmLogService *appfleet.KMLogService,
) *DriverHandler {
	return &DriverHandler{
		driverService:     driverService,
		assignmentService: assignmentService,
		kmLogService:      kmLogService,
	}
}

// RegisterRoutes mounts the driver routes. Reads accept either the
// fleet read permission or the driver dashboard permission so drivers
// can see their own records.
func (h *DriverHandler) RegisterRoutes(rg *gin.RouterGroup) {
	canRead := middleware.RequireAnyPermission(identity.PermDriverRead, identity.PermDriverDashboardView)

	drivers := rg.Group("/drivers")
	{
		drivers.POST("", middleware.RequirePermission(identity.PermDriverCreate), h.Create)
		drivers.GET("", middleware.RequirePermission(identity.PermDriverRead), h.List)
		drivers.GET("/:id", canRead, h.Get)
		drivers.PUT("/:id", middleware.RequirePermission(identity.PermDriverUpdate), h.Update)
		drivers.POST("/:id/deactivate", middleware.RequirePermission(identity.PermDriverDelete), h.Deactivate)
		drivers.GET("/:id/profile", canRead, h.GetProfile)
		drivers.PUT("/:id/profile", middleware.RequireAnyPermission(identity.PermDriverUpdate, identity.PermDriverDashboardView), h.UpsertProfile)
		drivers.GET("/:id/assignments", canRead, h.ListAssignments)
		drivers.GET("/:id/km-logs", canRead, h.ListKMLogs)
	}
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req appfleet.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, driver)
}

func (h *DriverHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drivers, total, err := h.driverService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, drivers, total, filter.Page, filter.PageSize)
}

func (h *DriverHandler) Get(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	driver, err := h.driverService.GetByID(c.Request.Context(), driverID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, driver)
}

func (h *DriverHandler) Update(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var req appfleet.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), driverID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, driver)
}

func (h *DriverHandler) Deactivate(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var req appfleet.DeactivateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.driverService.Deactivate(c.Request.Context(), driverID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *DriverHandler) GetProfile(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	profile, err := h.driverService.GetProfile(c.Request.Context(), driverID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

func (h *DriverHandler) UpsertProfile(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var req appfleet.UpsertDriverProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.driverService.UpsertProfile(c.Request.Context(), driverID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

func (h *DriverHandler) ListAssignments(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignments, err := h.assignmentService.ListByDriver(c.Request.Context(), driverID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignments)
}

func (h *DriverHandler) ListKMLogs(c *gin.Context) {
	driverID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, err := h.kmLogService.ListByDriver(c.Request.Context(), driverID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
