package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// AssignmentHandler serves driver assignments and their lifecycle
// transitions. Approve, reject, start and complete are the driver's
// side of the flow; create and cancel belong to operations.
type AssignmentHandler struct {
	BaseHandler
	assignmentService *appfleet.AssignmentService
	activityService   *appfleet.ActivityLogService
}

func NewAssignmentHandler(
	assignmentService *appfleet.AssignmentService,
	activityService *appfleet.ActivityLogService,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		activityService:   activityService,
	}
}

// RegisterRoutes mounts the assignment routes
func (h *AssignmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	canRead := middleware.RequireAnyPermission(identity.PermDriverRead, identity.PermDriverDashboardView)
	driverFlow := middleware.RequireAnyPermission(identity.PermDriverUpdate, identity.PermDriverDashboardView)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", middleware.RequirePermission(identity.PermDriverUpdate), h.Create)
		assignments.GET("", middleware.RequirePermission(identity.PermDriverRead), h.List)
		assignments.GET("/:id", canRead, h.Get)
		assignments.POST("/:id/approve", driverFlow, h.Approve)
		assignments.POST("/:id/reject", driverFlow, h.Reject)
		assignments.POST("/:id/start", driverFlow, h.Start)
		assignments.POST("/:id/complete", driverFlow, h.Complete)
		assignments.POST("/:id/cancel", middleware.RequirePermission(identity.PermDriverUpdate), h.Cancel)
		assignments.DELETE("/:id", middleware.RequirePermission(identity.PermDriverDelete), h.Delete)
		assignments.GET("/:id/activity-logs", canRead, h.ListActivityLogs)
	}
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req appfleet.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if userID, err := getUserID(c); err == nil {
		req.AssignedBy = &userID
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, assignment)
}

func (h *AssignmentHandler) List(c *gin.Context) {
	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignments, total, err := h.assignmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, assignments, total, filter.Page, filter.PageSize)
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	assignment, err := h.assignmentService.GetByID(c.Request.Context(), assignmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Approve(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	assignment, err := h.assignmentService.Approve(c.Request.Context(), assignmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Reject(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	var req appfleet.RejectAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignment, err := h.assignmentService.Reject(c.Request.Context(), assignmentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Start(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	assignment, err := h.assignmentService.Start(c.Request.Context(), assignmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Complete(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	assignment, err := h.assignmentService.Complete(c.Request.Context(), assignmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Cancel(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	assignment, err := h.assignmentService.Cancel(c.Request.Context(), assignmentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), assignmentID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AssignmentHandler) ListActivityLogs(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid assignment ID")
		return
	}

	var filter appfleet.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, err := h.activityService.ListByAssignment(c.Request.Context(), assignmentID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
