package http

import (
	"github.com/gin-gonic/gin"

	"github.com/evaly/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analysis", handler.Analyze)

		catalog := v1.Group("/catalog")
		{
			catalog.POST("/connect", handler.ConnectCatalog)
			catalog.GET("/products", handler.ListCatalogProducts)
			catalog.GET("/products/search", handler.SearchCatalogProducts)
			catalog.GET("/products/:id", handler.GetCatalogProduct)
			catalog.GET("/shop", handler.GetCatalogShop)
		}
	}

	return router
}
