package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/Pratul75/report360/internal/application/inventory"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// InventoryHandler serves inventory items and stock adjustments
type InventoryHandler struct {
	BaseHandler
	itemService *appinventory.ItemService
}

func NewInventoryHandler(itemService *appinventory.ItemService) *InventoryHandler {
	return &InventoryHandler{itemService: itemService}
}

// RegisterRoutes mounts the inventory item routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory-items")
	{
		items.POST("", middleware.RequirePermission(identity.PermInventoryCreate), h.Create)
		items.GET("", middleware.RequirePermission(identity.PermInventoryRead), h.List)
		items.GET("/:id", middleware.RequirePermission(identity.PermInventoryRead), h.Get)
		items.PUT("/:id", middleware.RequirePermission(identity.PermInventoryUpdate), h.Update)
		items.POST("/:id/adjust-stock", middleware.RequirePermission(identity.PermInventoryUpdate), h.AdjustStock)
		items.DELETE("/:id", middleware.RequirePermission(identity.PermInventoryDelete), h.Delete)
	}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req appinventory.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter appinventory.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req appinventory.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req appinventory.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemService.AdjustStock(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
