package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// ActivityLogHandler serves daily activity logs filed under assignments
type ActivityLogHandler struct {
	BaseHandler
	activityService *appfleet.ActivityLogService
}

func NewActivityLogHandler(activityService *appfleet.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activityService: activityService}
}

// RegisterRoutes mounts the activity log routes
func (h *ActivityLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	canRead := middleware.RequireAnyPermission(identity.PermDriverRead, identity.PermDriverDashboardView)
	driverFlow := middleware.RequireAnyPermission(identity.PermDriverUpdate, identity.PermDriverDashboardView)

	logs := rg.Group("/activity-logs")
	{
		logs.POST("", driverFlow, h.Create)
		logs.GET("", middleware.RequirePermission(identity.PermDriverRead), h.List)
		logs.GET("/:id", canRead, h.Get)
		logs.DELETE("/:id", middleware.RequirePermission(identity.PermDriverDelete), h.Delete)
	}
}

func (h *ActivityLogHandler) Create(c *gin.Context) {
	var req appfleet.CreateActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if userID, err := getUserID(c); err == nil {
		req.CreatedBy = &userID
	}

	log, err := h.activityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, log)
}

func (h *ActivityLogHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.activityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, total, filter.Page, filter.PageSize)
}

func (h *ActivityLogHandler) Get(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid activity log ID")
		return
	}

	log, err := h.activityService.GetByID(c.Request.Context(), logID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}

func (h *ActivityLogHandler) Delete(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid activity log ID")
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), logID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
