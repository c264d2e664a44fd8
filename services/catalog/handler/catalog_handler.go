package handler

import (
	"context"
	"fmt"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/catalog/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id uint) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListActiveProducts(ctx context.Context) ([]model.Product, error)
	ProductIDs(ctx context.Context, activeOnly bool) ([]uint, error)
	ProductsBySeller(ctx context.Context, sellerID uint) ([]uint, error)
	ProductsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]uint, error)
}

type SearchServiceInterface interface {
	Search(ctx context.Context, query model.SearchQuery) ([]uint, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
	search  SearchServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface, search SearchServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service, search: search}
}

// AddProductHandler handles POST /products
func (h *CatalogHandler) AddProductHandler(c *gin.Context) {
	var req helpers.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddProductHandler", err)
		return
	}

	categories := make([]model.Category, 0, len(req.CategoryIDs))
	for _, id := range req.CategoryIDs {
		categories = append(categories, model.Category{CategoryID: id})
	}

	product := model.Product{
		Name:         req.Name,
		ImgURL:       req.ImgURL,
		Description:  req.Description,
		FirstBid:     req.FirstBid,
		BuyPrice:     req.BuyPrice,
		StartingDate: req.StartingDate,
		EndingDate:   req.EndingDate,
		SellerID:     req.SellerID,
		LocationID:   req.LocationID,
		Categories:   categories,
	}

	if err := h.service.CreateProduct(c.Request.Context(), &product); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddProductHandler: failed to create product", map[string]any{
			"handler":   "AddProductHandler",
			"name":      req.Name,
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AddProductResponse{ProductID: product.ProductID}, "product created successfully")
	helpers.LogSuccess("AddProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"name":       product.Name,
		"seller_id":  product.SellerID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	id, ok := helpers.ParseIDParam(c, "GetProductHandler", "product_id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// ListProductsHandler handles GET /products
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductsHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
}

// ListActiveProductsHandler handles GET /products/active
func (h *CatalogHandler) ListActiveProductsHandler(c *gin.Context) {
	products, err := h.service.ListActiveProducts(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListActiveProductsHandler: error listing active products", map[string]any{"error": err.Error()})
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "active products retrieved successfully")
}

// ListProductIDsHandler handles GET /products/ids?active=true
func (h *CatalogHandler) ListProductIDsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	ids, err := h.service.ProductIDs(c.Request.Context(), activeOnly)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductIDsHandler: error listing product ids", map[string]any{"error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProductIDsResponse{ProductIDs: ids}, "product ids retrieved successfully")
}

// SellerProductsHandler handles GET /users/:user_id/products
func (h *CatalogHandler) SellerProductsHandler(c *gin.Context) {
	sellerID, ok := helpers.ParseIDParam(c, "SellerProductsHandler", "user_id")
	if !ok {
		return
	}

	ids, err := h.service.ProductsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SellerProductsHandler: error listing seller products", map[string]any{"user_id": sellerID, "error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProductIDsResponse{ProductIDs: ids}, "seller products retrieved successfully")
}

// CategoryProductsHandler handles GET /categories/:category_id/products?active=true
func (h *CatalogHandler) CategoryProductsHandler(c *gin.Context) {
	categoryID, ok := helpers.ParseIDParam(c, "CategoryProductsHandler", "category_id")
	if !ok {
		return
	}
	activeOnly := c.Query("active") == "true"

	ids, err := h.service.ProductsByCategory(c.Request.Context(), categoryID, activeOnly)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CategoryProductsHandler: error listing category products", map[string]any{"category_id": categoryID, "error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProductIDsResponse{ProductIDs: ids}, "category products retrieved successfully")
}

// SearchProductsHandler handles POST /products/search
func (h *CatalogHandler) SearchProductsHandler(c *gin.Context) {
	var req helpers.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SearchProductsHandler", err)
		return
	}

	query := model.SearchQuery{
		Text:       req.Text,
		MinBid:     req.MinBid,
		MaxBid:     req.MaxBid,
		MinBuyNow:  req.MinBuyNow,
		MaxBuyNow:  req.MaxBuyNow,
		CategoryID: req.CategoryID,
	}

	ids, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchProductsHandler: search failed", map[string]any{"text": req.Text, "error": err.Error()})
		return
	}

	if ids == nil {
		ids = []uint{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProductIDsResponse{ProductIDs: ids}, "search results retrieved successfully")
	helpers.LogSuccess("SearchProductsHandler", "search completed", map[string]any{
		"text":  req.Text,
		"count": len(ids),
	})
}
