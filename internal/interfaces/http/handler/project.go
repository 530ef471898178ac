package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/Pratul75/report360/internal/application/crm"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// ProjectHandler serves projects under a client
type ProjectHandler struct {
	BaseHandler
	projectService  *appcrm.ProjectService
	campaignService *appcrm.CampaignService
}

func NewProjectHandler(projectService *appcrm.ProjectService, campaignService *appcrm.CampaignService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, campaignService: campaignService}
}

// RegisterRoutes mounts the project routes
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", middleware.RequirePermission(identity.PermProjectCreate), h.Create)
		projects.GET("", middleware.RequirePermission(identity.PermProjectRead), h.List)
		projects.GET("/:id", middleware.RequirePermission(identity.PermProjectRead), h.Get)
		projects.PUT("/:id", middleware.RequirePermission(identity.PermProjectUpdate), h.Update)
		projects.DELETE("/:id", middleware.RequirePermission(identity.PermProjectDelete), h.Delete)
		projects.GET("/:id/campaigns", middleware.RequirePermission(identity.PermCampaignRead), h.ListCampaigns)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req appcrm.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req appcrm.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), projectID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProjectHandler) ListCampaigns(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	campaigns, err := h.campaignService.ListByProject(c.Request.Context(), projectID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, campaigns)
}
