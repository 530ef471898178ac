package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// KMLogHandler serves daily KM logs. Distance is computed server side
// from the GPS start and end points; odometer readings are accepted
// but only kept as a manual fallback.
type KMLogHandler struct {
	BaseHandler
	kmLogService *appfleet.KMLogService
}

func NewKMLogHandler(kmLogService *appfleet.KMLogService) *KMLogHandler {
	return &KMLogHandler{kmLogService: kmLogService}
}

// RegisterRoutes mounts the KM log routes
func (h *KMLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	canRead := middleware.RequireAnyPermission(identity.PermDriverRead, identity.PermDriverDashboardView)
	driverFlow := middleware.RequireAnyPermission(identity.PermDriverUpdate, identity.PermDriverDashboardView)

	logs := rg.Group("/km-logs")
	{
		logs.POST("/start", driverFlow, h.StartJourney)
		logs.POST("/:id/end", driverFlow, h.EndJourney)
		logs.GET("", middleware.RequirePermission(identity.PermDriverRead), h.List)
		logs.GET("/:id", canRead, h.Get)
		logs.GET("/by-date", canRead, h.GetByDriverAndDate)
	}
}

func (h *KMLogHandler) StartJourney(c *gin.Context) {
	var req appfleet.StartJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	log, err := h.kmLogService.StartJourney(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, log)
}

func (h *KMLogHandler) EndJourney(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid KM log ID")
		return
	}

	var req appfleet.EndJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	log, err := h.kmLogService.EndJourney(c.Request.Context(), logID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}

func (h *KMLogHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.kmLogService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, total, filter.Page, filter.PageSize)
}

func (h *KMLogHandler) Get(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid KM log ID")
		return
	}

	log, err := h.kmLogService.GetByID(c.Request.Context(), logID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}

type kmLogByDateQuery struct {
	DriverID string `form:"driver_id" binding:"required,uuid"`
	Date     string `form:"date" binding:"required"`
}

func (h *KMLogHandler) GetByDriverAndDate(c *gin.Context) {
	var query kmLogByDateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	driverID, ok := parseUUID(query.DriverID)
	if !ok {
		h.BadRequest(c, "Invalid driver ID")
		return
	}
	date, err := time.Parse("2006-01-02", query.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := h.kmLogService.GetByDriverAndDate(c.Request.Context(), driverID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}
