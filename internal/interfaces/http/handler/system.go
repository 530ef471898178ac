package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appinsights "github.com/Pratul75/report360/internal/application/insights"
)

// SystemHandler serves health and readiness probes
type SystemHandler struct {
	BaseHandler
	insightsService *appinsights.Service
}

func NewSystemHandler(insightsService *appinsights.Service) *SystemHandler {
	return &SystemHandler{insightsService: insightsService}
}

// RegisterRoutes mounts the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

func (h *SystemHandler) Health(c *gin.Context) {
	insightsStatus := "unavailable"
	if h.insightsService != nil && h.insightsService.Available(c.Request.Context()) {
		insightsStatus = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "report360-api",
		"insights":  insightsStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
