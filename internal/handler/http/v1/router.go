package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. The export route carries the
// API-key middleware only when keys are configured.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/monthly", h.getMonthlyTrend)
		analytics.GET("/neighborhoods", h.getTopNeighborhoods)
		analytics.GET("/categories", h.getTopCategories)
		analytics.GET("/hourly", h.getHourlyPattern)
		analytics.GET("/weekdays", h.getWeekdayPattern)
		analytics.GET("/heatmap", h.getHeatmap)
		analytics.GET("/filters", h.getFilterOptions)

		if len(h.cfg.APIKeys) > 0 {
			analytics.GET("/export", APIKeyAuthMiddleware(h.cfg, h.logger), h.exportCSV)
		} else {
			analytics.GET("/export", h.exportCSV)
		}
	}

	api.GET("/forecast", h.getForecast)

	api.GET("/system/health", h.healthCheck)
}
