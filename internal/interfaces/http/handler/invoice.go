package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// InvoiceHandler serves vendor invoices. Approving an invoice creates
// the pending payment record; marking it paid completes the payment.
type InvoiceHandler struct {
	BaseHandler
	invoiceService *appfinance.InvoiceService
}

func NewInvoiceHandler(invoiceService *appfinance.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes mounts the invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", middleware.RequirePermission(identity.PermInvoiceCreate), h.Create)
		invoices.GET("", middleware.RequirePermission(identity.PermInvoiceRead), h.List)
		invoices.GET("/:id", middleware.RequirePermission(identity.PermInvoiceRead), h.Get)
		invoices.PUT("/:id", middleware.RequirePermission(identity.PermInvoiceUpdate), h.Update)
		invoices.POST("/:id/submit", middleware.RequirePermission(identity.PermInvoiceUpdate), h.Submit)
		invoices.POST("/:id/approve", middleware.RequirePermission(identity.PermInvoiceApprove), h.Approve)
		invoices.POST("/:id/reject", middleware.RequirePermission(identity.PermInvoiceApprove), h.Reject)
		invoices.POST("/:id/mark-paid", middleware.RequirePermission(identity.PermInvoiceApprove), h.MarkPaid)
		invoices.DELETE("/:id", middleware.RequirePermission(identity.PermInvoiceDelete), h.Delete)
	}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req appfinance.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	var filter appfinance.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req appfinance.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), invoiceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) Submit(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Submit(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) Approve(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Approve(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) Reject(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Reject(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.MarkPaid(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
