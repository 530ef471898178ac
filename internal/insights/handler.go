package insights

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the engine over HTTP for the API server to call
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

// RegisterRoutes mounts the analytics routes on the given engine
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	analytics := router.Group("/analytics")
	{
		analytics.POST("/campaign-insights", h.CampaignInsights)
		analytics.POST("/expense-anomalies", h.ExpenseAnomalies)
		analytics.POST("/vehicle-utilization", h.VehicleUtilization)
		analytics.POST("/driver-utilization", h.DriverUtilization)
		analytics.POST("/vendor-performance", h.VendorPerformance)
		analytics.POST("/dashboard", h.Dashboard)
	}
}

type campaignsPayload struct {
	Campaigns []CampaignRow `json:"campaigns" binding:"required"`
}

type expensesPayload struct {
	Expenses []ExpenseRow `json:"expenses" binding:"required"`
}

type vehiclesPayload struct {
	Vehicles []UtilizationRow `json:"vehicles" binding:"required"`
}

type driversPayload struct {
	Drivers []UtilizationRow `json:"drivers" binding:"required"`
}

type vendorsPayload struct {
	Vendors []VendorRow `json:"vendors" binding:"required"`
}

type dashboardPayload struct {
	Campaigns []CampaignRow    `json:"campaigns"`
	Expenses  []ExpenseRow     `json:"expenses"`
	Vehicles  []UtilizationRow `json:"vehicles"`
	Drivers   []UtilizationRow `json:"drivers"`
	Vendors   []VendorRow      `json:"vendors"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "insights",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) CampaignInsights(c *gin.Context) {
	var payload campaignsPayload
	if !h.bind(c, &payload) {
		return
	}
	h.ok(c, h.engine.AnalyzeCampaigns(c.Request.Context(), payload.Campaigns))
}

func (h *Handler) ExpenseAnomalies(c *gin.Context) {
	var payload expensesPayload
	if !h.bind(c, &payload) {
		return
	}
	h.ok(c, h.engine.DetectExpenseAnomalies(payload.Expenses))
}

func (h *Handler) VehicleUtilization(c *gin.Context) {
	var payload vehiclesPayload
	if !h.bind(c, &payload) {
		return
	}
	h.ok(c, h.engine.AnalyzeUtilization(payload.Vehicles, "vehicle"))
}

func (h *Handler) DriverUtilization(c *gin.Context) {
	var payload driversPayload
	if !h.bind(c, &payload) {
		return
	}
	h.ok(c, h.engine.AnalyzeUtilization(payload.Drivers, "driver"))
}

func (h *Handler) VendorPerformance(c *gin.Context) {
	var payload vendorsPayload
	if !h.bind(c, &payload) {
		return
	}
	h.ok(c, h.engine.AnalyzeVendors(c.Request.Context(), payload.Vendors))
}

func (h *Handler) Dashboard(c *gin.Context) {
	var payload dashboardPayload
	if !h.bind(c, &payload) {
		return
	}
	report := h.engine.Dashboard(
		c.Request.Context(),
		payload.Campaigns,
		payload.Expenses,
		payload.Vehicles,
		payload.Drivers,
		payload.Vendors,
	)
	h.ok(c, report)
}

func (h *Handler) bind(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		h.logger.Debug("rejected analytics payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_INPUT",
				"message": err.Error(),
			},
		})
		return false
	}
	return true
}

func (h *Handler) ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
