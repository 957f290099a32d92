package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the API, health and metrics endpoints on router
func RegisterRoutes(router *gin.Engine, search *SearchHandler, health *HealthHandler) {
	router.GET("/health", health.Health)
	router.GET("/version", health.Version)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", search.Search)
		apiV1.POST("/search/article-ids", search.ArticleIDs)
		apiV1.GET("/products/:id", search.GetProduct)
	}
}
