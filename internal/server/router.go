package server

import (
	bidding "auction-marketplace/internal/biddingService"
	catalog "auction-marketplace/internal/catalogService"
	search "auction-marketplace/internal/searchService"
	biddinghandler "auction-marketplace/services/bidding/handler"
	cataloghandler "auction-marketplace/services/catalog/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalogService *catalog.CatalogService, searchService *search.SearchService, biddingService *bidding.BiddingService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // request ids for tracing
	router.Use(RequestLoggerMiddleware) // custom request logging

	catalogHandler := cataloghandler.NewCatalogHandler(catalogService, searchService)
	biddingHandler := biddinghandler.NewBiddingHandler(biddingService)

	products := router.Group("/products")
	{
		products.POST("", catalogHandler.AddProductHandler)
		products.GET("", catalogHandler.ListProductsHandler)
		products.GET("/active", catalogHandler.ListActiveProductsHandler)
		products.GET("/ids", catalogHandler.ListProductIDsHandler)
		products.POST("/search", catalogHandler.SearchProductsHandler)
		products.GET("/:product_id", catalogHandler.GetProductHandler)
		products.GET("/:product_id/bids", biddingHandler.GetBidsByProductHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("/:category_id/products", catalogHandler.CategoryProductsHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/products", catalogHandler.SellerProductsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	return router
}
