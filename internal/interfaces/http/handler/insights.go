package handler

import (
	"github.com/gin-gonic/gin"

	appinsights "github.com/Pratul75/report360/internal/application/insights"
	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/interfaces/http/middleware"
)

// InsightsHandler proxies analytics requests to the insights sidecar.
// When the sidecar is disabled or unreachable the endpoints answer 200
// with a degraded payload instead of failing the request.
type InsightsHandler struct {
	BaseHandler
	insightsService *appinsights.Service
}

func NewInsightsHandler(insightsService *appinsights.Service) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// RegisterRoutes mounts the insights routes
func (h *InsightsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	insights := rg.Group("/insights")
	insights.Use(middleware.RequirePermission(identity.PermAnalyticsView))
	{
		insights.GET("/campaigns", h.Campaigns)
		insights.GET("/expenses/anomalies", h.ExpenseAnomalies)
		insights.GET("/vehicles/utilization", h.VehicleUtilization)
		insights.GET("/drivers/utilization", h.DriverUtilization)
		insights.GET("/vendors/performance", h.VendorPerformance)
		insights.GET("/dashboard", h.Dashboard)
	}
}

func (h *InsightsHandler) Campaigns(c *gin.Context) {
	result, degraded, err := h.insightsService.CampaignInsights(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) ExpenseAnomalies(c *gin.Context) {
	result, degraded, err := h.insightsService.ExpenseAnomalies(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) VehicleUtilization(c *gin.Context) {
	result, degraded, err := h.insightsService.VehicleUtilization(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) DriverUtilization(c *gin.Context) {
	result, degraded, err := h.insightsService.DriverUtilization(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) VendorPerformance(c *gin.Context) {
	result, degraded, err := h.insightsService.VendorPerformance(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) Dashboard(c *gin.Context) {
	result, degraded, err := h.insightsService.Dashboard(c.Request.Context())
	h.respond(c, result, degraded, err)
}

func (h *InsightsHandler) respond(c *gin.Context, result any, degraded *appinsights.DegradedResponse, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if degraded != nil {
		h.Success(c, degraded)
		return
	}
	h.Success(c, result)
}
