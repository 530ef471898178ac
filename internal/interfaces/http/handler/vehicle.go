package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// VehicleHandler serves the vehicle fleet
type VehicleHandler struct {
	BaseHandler
	vehicleService *appfleet.VehicleService
}

func NewVehicleHandler(vehicleService *appfleet.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// RegisterRoutes mounts the vehicle routes
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", middleware.RequirePermission(identity.PermVehicleCreate), h.Create)
		vehicles.GET("", middleware.RequirePermission(identity.PermVehicleRead), h.List)
		vehicles.GET("/:id", middleware.RequirePermission(identity.PermVehicleRead), h.Get)
		vehicles.PUT("/:id", middleware.RequirePermission(identity.PermVehicleUpdate), h.Update)
		vehicles.DELETE("/:id", middleware.RequirePermission(identity.PermVehicleDelete), h.Delete)
	}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req appfleet.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vehicles, total, filter.Page, filter.PageSize)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), vehicleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req appfleet.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), vehicleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), vehicleID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
