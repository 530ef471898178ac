package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/Pratul75/report360/internal/application/crm"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// ClientHandler serves client accounts. Deleting a client cascades
// through its projects and campaigns; the preview endpoint shows the
// blast radius before the caller commits.
type ClientHandler struct {
	BaseHandler
	clientService  *appcrm.ClientService
	projectService *appcrm.ProjectService
}

func NewClientHandler(clientService *appcrm.ClientService, projectService *appcrm.ProjectService) *ClientHandler {
	return &ClientHandler{clientService: clientService, projectService: projectService}
}

// RegisterRoutes mounts the client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", middleware.RequirePermission(identity.PermClientCreate), h.Create)
		clients.GET("", middleware.RequirePermission(identity.PermClientRead), h.List)
		clients.GET("/:id", middleware.RequirePermission(identity.PermClientRead), h.Get)
		clients.PUT("/:id", middleware.RequirePermission(identity.PermClientUpdate), h.Update)
		clients.GET("/:id/deletion-preview", middleware.RequirePermission(identity.PermClientDelete), h.DeletionPreview)
		clients.DELETE("/:id", middleware.RequirePermission(identity.PermClientDelete), h.Delete)
		clients.GET("/:id/projects", middleware.RequirePermission(identity.PermProjectRead), h.ListProjects)
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req appcrm.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req appcrm.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

func (h *ClientHandler) DeletionPreview(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	preview, err := h.clientService.DeletionPreview(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	result, err := h.clientService.Delete(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ClientHandler) ListProjects(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	projects, err := h.projectService.ListByClient(c.Request.Context(), clientID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, projects)
}
