package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// PaymentHandler serves payments spawned from approved invoices.
// Payments are never created directly; they only move through their
// lifecycle here.
type PaymentHandler struct {
	BaseHandler
	paymentService *appfinance.PaymentService
}

func NewPaymentHandler(paymentService *appfinance.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes mounts the payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("", middleware.RequirePermission(identity.PermPaymentRead), h.List)
		payments.GET("/:id", middleware.RequirePermission(identity.PermPaymentRead), h.Get)
		payments.POST("/:id/process", middleware.RequirePermission(identity.PermPaymentUpdate), h.Process)
		payments.POST("/:id/complete", middleware.RequirePermission(identity.PermPaymentUpdate), h.Complete)
		payments.POST("/:id/fail", middleware.RequirePermission(identity.PermPaymentUpdate), h.Fail)
	}
}

func (h *PaymentHandler) List(c *gin.Context) {
	var filter appfinance.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payments, total, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, payments, total, filter.Page, filter.PageSize)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

func (h *PaymentHandler) Process(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req appfinance.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Process(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

func (h *PaymentHandler) Complete(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req appfinance.CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Complete(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

func (h *PaymentHandler) Fail(c *gin.Context) {
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req appfinance.FailPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Fail(c.Request.Context(), paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}
