package repository

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// MatchField selects which product column a search sub-query matches against.
type MatchField int

const (
	MatchName MatchField = iota
	MatchDescription
)

// CatalogDB defines the product/bid storage interface for the marketplace.
// Implementations must apply bids atomically: the counter increment, current
// bid update, deactivation check and bid record are one unit.
type CatalogDB interface {
	InsertProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListActiveProducts(ctx context.Context) ([]model.Product, error)
	ListProductIDs(ctx context.Context) ([]uint, error)
	ListActiveProductIDs(ctx context.Context) ([]uint, error)
	ProductIDsBySeller(ctx context.Context, sellerID uint) ([]uint, error)
	ProductIDsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]uint, error)
	ExpireOverdue(ctx context.Context, now int64) (int64, error)
	ApplyBid(ctx context.Context, bid model.Bid) (model.Bid, model.Product, error)
	BidsByProduct(ctx context.Context, productID uint) ([]model.Bid, error)
	SearchProductIDs(ctx context.Context, field MatchField, pattern string, query model.SearchQuery) ([]uint, error)
}

// validateProduct checks the required listing fields before insert.
func validateProduct(p *model.Product) error {
	switch {
	case p == nil:
		return fmt.Errorf("validate product: %w - nil product", auctionerrors.ErrValidation)
	case p.Name == "":
		return fmt.Errorf("validate product: %w - missing name", auctionerrors.ErrValidation)
	case p.ImgURL == "":
		return fmt.Errorf("validate product: %w - missing image", auctionerrors.ErrValidation)
	case p.Description == "":
		return fmt.Errorf("validate product: %w - missing description", auctionerrors.ErrValidation)
	case p.FirstBid <= 0:
		return fmt.Errorf("validate product: %w - non-positive first bid", auctionerrors.ErrValidation)
	case p.EndingDate <= p.StartingDate:
		return fmt.Errorf("validate product: %w - ending date not after starting date", auctionerrors.ErrValidation)
	case p.BuyPrice != nil && *p.BuyPrice <= 0:
		return fmt.Errorf("validate product: %w - non-positive buy price", auctionerrors.ErrValidation)
	}
	return nil
}

// nextActive computes the active flag after a bid. A bid that exactly meets
// the buy-now price marks the product sold; any other amount leaves the flag
// unchanged, so an already inactive product is never reactivated.
func nextActive(p model.Product, amount float64) bool {
	if p.BuyPrice != nil && amount == *p.BuyPrice {
		return false
	}
	return p.Active
}
