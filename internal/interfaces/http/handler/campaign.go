package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/Pratul75/report360/internal/application/crm"
	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// CampaignHandler serves campaigns, the unit of field execution
type CampaignHandler struct {
	BaseHandler
	campaignService   *appcrm.CampaignService
	reportService     *appcrm.ReportService
	assignmentService *appfleet.AssignmentService
}

func NewCampaignHandler(
	campaignService *appcrm.CampaignService,
	reportService *appcrm.ReportService,
	assignmentService *appfleet.AssignmentService,
) *CampaignHandler {
	return &CampaignHandler{
		campaignService:   campaignService,
		reportService:     reportService,
		assignmentService: assignmentService,
	}
}

// RegisterRoutes mounts the campaign routes
func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", middleware.RequirePermission(identity.PermCampaignCreate), h.Create)
		campaigns.GET("", middleware.RequirePermission(identity.PermCampaignRead), h.List)
		campaigns.GET("/:id", middleware.RequirePermission(identity.PermCampaignRead), h.Get)
		campaigns.PUT("/:id", middleware.RequirePermission(identity.PermCampaignUpdate), h.Update)
		campaigns.PATCH("/:id/status", middleware.RequirePermission(identity.PermCampaignUpdate), h.ChangeStatus)
		campaigns.DELETE("/:id", middleware.RequirePermission(identity.PermCampaignDelete), h.Delete)
		campaigns.GET("/:id/reports", middleware.RequirePermission(identity.PermReportRead), h.ListReports)
		campaigns.GET("/:id/assignments", middleware.RequirePermission(identity.PermDriverRead), h.ListAssignments)
	}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req appcrm.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, campaign)
}

func (h *CampaignHandler) List(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaigns, total, err := h.campaignService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, campaigns, total, filter.Page, filter.PageSize)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	campaign, err := h.campaignService.GetByID(c.Request.Context(), campaignID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, campaign)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	var req appcrm.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaign, err := h.campaignService.Update(c.Request.Context(), campaignID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, campaign)
}

func (h *CampaignHandler) ChangeStatus(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	var req appcrm.ChangeCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaign, err := h.campaignService.ChangeStatus(c.Request.Context(), campaignID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, campaign)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	if err := h.campaignService.Delete(c.Request.Context(), campaignID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CampaignHandler) ListReports(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reports, err := h.reportService.ListByCampaign(c.Request.Context(), campaignID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reports)
}

func (h *CampaignHandler) ListAssignments(c *gin.Context) {
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignments, err := h.assignmentService.ListByCampaign(c.Request.Context(), campaignID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignments)
}
