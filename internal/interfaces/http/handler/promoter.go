package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/Pratul75/report360/internal/application/crm"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// PromoterHandler serves promoters and their daily activity entries
type PromoterHandler struct {
	BaseHandler
	promoterService *appcrm.PromoterService
}

func NewPromoterHandler(promoterService *appcrm.PromoterService) *PromoterHandler {
	return &PromoterHandler{promoterService: promoterService}
}

// RegisterRoutes mounts the promoter routes
func (h *PromoterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	promoters := rg.Group("/promoters")
	{
		promoters.POST("", middleware.RequirePermission(identity.PermPromoterCreate), h.Create)
		promoters.GET("", middleware.RequirePermission(identity.PermPromoterRead), h.List)
		promoters.GET("/:id", middleware.RequirePermission(identity.PermPromoterRead), h.Get)
		promoters.PUT("/:id", middleware.RequirePermission(identity.PermPromoterUpdate), h.Update)
		promoters.DELETE("/:id", middleware.RequirePermission(identity.PermPromoterDelete), h.Delete)
		promoters.GET("/:id/activities", middleware.RequirePermission(identity.PermPromoterActivityRead), h.ListActivitiesByPromoter)
	}

	activities := rg.Group("/promoter-activities")
	{
		activities.POST("", middleware.RequirePermission(identity.PermPromoterActivityCreate), h.RecordActivity)
		activities.GET("", middleware.RequirePermission(identity.PermPromoterActivityRead), h.ListActivities)
		activities.GET("/:id", middleware.RequirePermission(identity.PermPromoterActivityRead), h.GetActivity)
		activities.PUT("/:id", middleware.RequirePermission(identity.PermPromoterActivityUpdate), h.UpdateActivity)
		activities.DELETE("/:id", middleware.RequirePermission(identity.PermPromoterActivityDelete), h.DeleteActivity)
	}
}

func (h *PromoterHandler) Create(c *gin.Context) {
	var req appcrm.CreatePromoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promoter, err := h.promoterService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, promoter)
}

func (h *PromoterHandler) List(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promoters, total, err := h.promoterService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, promoters, total, filter.Page, filter.PageSize)
}

func (h *PromoterHandler) Get(c *gin.Context) {
	promoterID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promoter ID")
		return
	}

	promoter, err := h.promoterService.GetByID(c.Request.Context(), promoterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promoter)
}

func (h *PromoterHandler) Update(c *gin.Context) {
	promoterID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promoter ID")
		return
	}

	var req appcrm.UpdatePromoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promoter, err := h.promoterService.Update(c.Request.Context(), promoterID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, promoter)
}

func (h *PromoterHandler) Delete(c *gin.Context) {
	promoterID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promoter ID")
		return
	}

	if err := h.promoterService.Delete(c.Request.Context(), promoterID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *PromoterHandler) RecordActivity(c *gin.Context) {
	var req appcrm.CreatePromoterActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if userID, err := getUserID(c); err == nil {
		req.CreatedBy = &userID
	}

	activity, err := h.promoterService.RecordActivity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, activity)
}

func (h *PromoterHandler) ListActivities(c *gin.Context) {
	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activities, total, err := h.promoterService.ListActivities(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, activities, total, filter.Page, filter.PageSize)
}

func (h *PromoterHandler) ListActivitiesByPromoter(c *gin.Context) {
	promoterID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promoter ID")
		return
	}

	var filter appcrm.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activities, err := h.promoterService.ListActivitiesByPromoter(c.Request.Context(), promoterID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, activities)
}

func (h *PromoterHandler) GetActivity(c *gin.Context) {
	activityID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid activity ID")
		return
	}

	activity, err := h.promoterService.GetActivity(c.Request.Context(), activityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, activity)
}

func (h *PromoterHandler) UpdateActivity(c *gin.Context) {
	activityID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid activity ID")
		return
	}

	var req appcrm.UpdatePromoterActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	activity, err := h.promoterService.UpdateActivity(c.Request.Context(), activityID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, activity)
}

func (h *PromoterHandler) DeleteActivity(c *gin.Context) {
	activityID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid activity ID")
		return
	}

	if err := h.promoterService.DeleteActivity(c.Request.Context(), activityID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
