package apihandlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the HTTP API on router.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/search", h.SearchHandler)

		historyGroup := v1.Group("/history")
		{
			historyGroup.GET("", h.ListHistoryHandler)
			historyGroup.GET("/:id/results", h.HistoryResultsHandler)
		}
	}

	router.GET("/health", h.HealthHandler)
}
