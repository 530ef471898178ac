package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// VendorHandler serves fleet vendors and their nested resources
type VendorHandler struct {
	BaseHandler
	vendorService  *appfleet.VendorService
	vehicleService *appfleet.VehicleService
	driverService  *appfleet.DriverService
	invoiceService *appfinance.InvoiceService
}

func NewVendorHandler(
	vendorService *appfleet.VendorService,
	vehicleService *appfleet.VehicleService,
	driverService *appfleet.DriverService,
	invoiceService *appfinance.InvoiceService,
) *VendorHandler {
	return &VendorHandler{
		vendorService:  vendorService,
		vehicleService: vehicleService,
		driverService:  driverService,
		invoiceService: invoiceService,
	}
}

// RegisterRoutes mounts the vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", middleware.RequirePermission(identity.PermVendorCreate), h.Create)
		vendors.GET("", middleware.RequirePermission(identity.PermVendorRead), h.List)
		vendors.GET("/:id", middleware.RequirePermission(identity.PermVendorRead), h.Get)
		vendors.PUT("/:id", middleware.RequirePermission(identity.PermVendorUpdate), h.Update)
		vendors.DELETE("/:id", middleware.RequirePermission(identity.PermVendorDelete), h.Delete)
		vendors.GET("/:id/vehicles", middleware.RequirePermission(identity.PermVehicleRead), h.ListVehicles)
		vendors.GET("/:id/drivers", middleware.RequirePermission(identity.PermDriverRead), h.ListDrivers)
		vendors.GET("/:id/invoices", middleware.RequirePermission(identity.PermInvoiceRead), h.ListInvoices)
	}
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req appfleet.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vendor)
}

func (h *VendorHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendors, total, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

func (h *VendorHandler) Get(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

func (h *VendorHandler) Update(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req appfleet.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

func (h *VendorHandler) Delete(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), vendorID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *VendorHandler) ListVehicles(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicles, err := h.vehicleService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vehicles)
}

func (h *VendorHandler) ListDrivers(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	drivers, err := h.driverService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drivers)
}

func (h *VendorHandler) ListInvoices(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var filter appfinance.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, err := h.invoiceService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}
