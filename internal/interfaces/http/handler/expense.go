package handler

import (
	"github.com/gin-gonic/gin"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// ExpenseHandler serves campaign expenses and the approval flow
type ExpenseHandler struct {
	BaseHandler
	expenseService *appfinance.ExpenseService
}

func NewExpenseHandler(expenseService *appfinance.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes mounts the expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", middleware.RequirePermission(identity.PermExpenseCreate), h.Create)
		expenses.GET("", middleware.RequirePermission(identity.PermExpenseRead), h.List)
		expenses.GET("/mine", middleware.RequirePermission(identity.PermExpenseRead), h.ListMine)
		expenses.GET("/:id", middleware.RequirePermission(identity.PermExpenseRead), h.Get)
		expenses.PUT("/:id", middleware.RequirePermission(identity.PermExpenseUpdate), h.Update)
		expenses.POST("/:id/approve", middleware.RequirePermission(identity.PermExpenseApprove), h.Approve)
		expenses.POST("/:id/reject", middleware.RequirePermission(identity.PermExpenseApprove), h.Reject)
		expenses.DELETE("/:id", middleware.RequirePermission(identity.PermExpenseDelete), h.Delete)
	}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req appfinance.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if userID, err := getUserID(c); err == nil {
		req.SubmittedBy = &userID
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	var filter appfinance.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expenses, total, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// ListMine lists the caller's own submissions
func (h *ExpenseHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter appfinance.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expenses, err := h.expenseService.ListBySubmitter(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expenses)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req appfinance.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), expenseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

func (h *ExpenseHandler) Approve(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.Approve(c.Request.Context(), expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

func (h *ExpenseHandler) Reject(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.Reject(c.Request.Context(), expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), expenseID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
