package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/Pratul75/report360/internal/application/crm"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// ReportHandler serves field execution reports
type ReportHandler struct {
	BaseHandler
	reportService *appcrm.ReportService
}

func NewReportHandler(reportService *appcrm.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes mounts the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("", middleware.RequirePermission(identity.PermReportCreate), h.Create)
		reports.GET("", middleware.RequirePermission(identity.PermReportRead), h.List)
		reports.GET("/:id", middleware.RequirePermission(identity.PermReportRead), h.Get)
		reports.PUT("/:id", middleware.RequirePermission(identity.PermReportUpdate), h.Update)
		reports.DELETE("/:id", middleware.RequirePermission(identity.PermReportDelete), h.Delete)
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req appcrm.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reports, total, err := h.reportService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, reports, total, filter.Page, filter.PageSize)
}

func (h *ReportHandler) Get(c *gin.Context) {
	reportID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), reportID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

func (h *ReportHandler) Update(c *gin.Context) {
	reportID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	var req appcrm.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), reportID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	reportID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid report ID")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), reportID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
