package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/Pratul75/report360/internal/application/inventory"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// GodownHandler serves warehouses (godowns) and their item listings
type GodownHandler struct {
	BaseHandler
	godownService *appinventory.GodownService
	itemService   *appinventory.ItemService
}

func NewGodownHandler(godownService *appinventory.GodownService, itemService *appinventory.ItemService) *GodownHandler {
	return &GodownHandler{godownService: godownService, itemService: itemService}
}

// RegisterRoutes mounts the godown routes
func (h *GodownHandler) RegisterRoutes(rg *gin.RouterGroup) {
	godowns := rg.Group("/godowns")
	{
		godowns.POST("", middleware.RequirePermission(identity.PermGodownCreate), h.Create)
		godowns.GET("", middleware.RequirePermission(identity.PermGodownRead), h.List)
		godowns.GET("/:id", middleware.RequirePermission(identity.PermGodownRead), h.Get)
		godowns.PUT("/:id", middleware.RequirePermission(identity.PermGodownUpdate), h.Update)
		godowns.DELETE("/:id", middleware.RequirePermission(identity.PermGodownDelete), h.Delete)
		godowns.GET("/:id/items", middleware.RequirePermission(identity.PermInventoryRead), h.ListItems)
	}
}

func (h *GodownHandler) Create(c *gin.Context) {
	var req appinventory.CreateGodownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	godown, err := h.godownService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, godown)
}

func (h *GodownHandler) List(c *gin.Context) {
	var filter appinventory.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	godowns, total, err := h.godownService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, godowns, total, filter.Page, filter.PageSize)
}

func (h *GodownHandler) Get(c *gin.Context) {
	godownID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid godown ID")
		return
	}

	godown, err := h.godownService.GetByID(c.Request.Context(), godownID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, godown)
}

func (h *GodownHandler) Update(c *gin.Context) {
	godownID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid godown ID")
		return
	}

	var req appinventory.UpdateGodownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	godown, err := h.godownService.Update(c.Request.Context(), godownID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, godown)
}

func (h *GodownHandler) Delete(c *gin.Context) {
	godownID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid godown ID")
		return
	}

	if err := h.godownService.Delete(c.Request.Context(), godownID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *GodownHandler) ListItems(c *gin.Context) {
	godownID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid godown ID")
		return
	}

	var filter appinventory.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.itemService.ListByGodown(c.Request.Context(), godownID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
