package httpserver

import (
	"log"

	"garage-sale/internal/service/catalog"
	"garage-sale/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the routes are built on.
type Deps struct {
	CatalogSvc  *catalog.Service
	CheckoutSvc *checkout.Service
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestID(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.POST("/products", createProductHandler(deps.CatalogSvc))
	api.POST("/checkout", checkoutHandler(logger, deps.CheckoutSvc))

	router.GET("/success", successHandler)
	router.GET("/cancel", cancelHandler)

	return router
}
