package catalog

import (
	"context"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// CatalogService defines the business logic for managing auction listings
type CatalogService struct {
	repo repository.CatalogDB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(repo repository.CatalogDB) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// CreateProduct validates and persists a new listing. The listing opens
// immediately: the current bid starts at the first bid, the counter at zero.
func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product == nil {
		return fmt.Errorf("service: %w - nil product", auctionerrors.ErrValidation)
	}
	if product.SellerID == 0 {
		return fmt.Errorf("service: %w - missing seller", auctionerrors.ErrValidation)
	}

	if product.StartingDate == 0 {
		product.StartingDate = time.Now().UnixMilli()
	}
	product.CurrentBid = product.FirstBid
	product.NumberOfBids = 0
	product.Active = true

	if err := s.repo.InsertProduct(ctx, product); err != nil {
		return fmt.Errorf("service: failed to create product %q: %w", product.Name, err)
	}
	return nil
}

// GetProduct returns a single listing by identifier
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	if id == 0 {
		return models.Product{}, fmt.Errorf("service: %w - missing product ID", auctionerrors.ErrValidation)
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %d: %w", id, err)
	}
	return product, nil
}

// ListProducts returns every listing
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// ListActiveProducts returns every listing still open for bidding
func (s *CatalogService) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active products: %w", err)
	}
	return products, nil
}

// ProductIDs returns listing identifiers, optionally active-only
func (s *CatalogService) ProductIDs(ctx context.Context, activeOnly bool) ([]uint, error) {
	var (
		ids []uint
		err error
	)
	if activeOnly {
		ids, err = s.repo.ListActiveProductIDs(ctx)
	} else {
		ids, err = s.repo.ListProductIDs(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to list product ids: %w", err)
	}
	return ids, nil
}

// ProductsBySeller returns the identifiers of a seller's listings
func (s *CatalogService) ProductsBySeller(ctx context.Context, sellerID uint) ([]uint, error) {
	if sellerID == 0 {
		return nil, fmt.Errorf("service: %w - missing seller ID", auctionerrors.ErrValidation)
	}

	ids, err := s.repo.ProductIDsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products for seller %d: %w", sellerID, err)
	}
	return ids, nil
}

// ProductsByCategory returns the identifiers of a category's listings,
// optionally restricted to active ones
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]uint, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("service: %w - missing category ID", auctionerrors.ErrValidation)
	}

	ids, err := s.repo.ProductIDsByCategory(ctx, categoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products for category %d: %w", categoryID, err)
	}
	return ids, nil
}

// ExpireOverdue deactivates every listing whose ending date has passed and
// returns how many were expired. Intended to be driven by a periodic sweep.
func (s *CatalogService) ExpireOverdue(ctx context.Context, now int64) (int64, error) {
	expired, err := s.repo.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("service: failed to expire overdue products: %w", err)
	}
	return expired, nil
}
