package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// BiddingService defines the business logic for bidding on listings
type BiddingService struct {
	repo repository.CatalogDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.CatalogDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// PlaceBid validates and applies a user's bid on a product. On success the
// product's bid counter has grown by one, its current bid equals the amount,
// and a bid exactly meeting the buy-now price has closed the listing.
func (s *BiddingService) PlaceBid(ctx context.Context, productID, bidderID uint, amount float64) (models.Bid, models.Product, error) {
	if err := s.validateBid(ctx, productID, bidderID, amount); err != nil {
		return models.Bid{}, models.Product{}, err
	}

	bid := models.Bid{
		ProductID: productID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: time.Now().UnixMilli(),
	}

	placed, product, err := s.repo.ApplyBid(ctx, bid)
	if err != nil {
		return models.Bid{}, models.Product{}, fmt.Errorf("service: failed to apply bid on product %d by user %d: %w", productID, bidderID, err)
	}

	return placed, product, nil
}

// validateBid checks input validity and business rules for bidding
func (s *BiddingService) validateBid(ctx context.Context, productID, bidderID uint, amount float64) error {
	if productID == 0 || bidderID == 0 {
		return fmt.Errorf("service: %w - missing product or bidder ID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrProductNotFound) {
			return fmt.Errorf("service: %w", err)
		}
		return fmt.Errorf("service: failed to check product %d: %w", productID, err)
	}

	if !product.Active {
		return fmt.Errorf("service: %w - listing %d is closed", auctionerrors.ErrInvalidBid, productID)
	}
	if product.NumberOfBids > 0 && amount <= product.CurrentBid {
		return fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, product.CurrentBid)
	}
	if product.NumberOfBids == 0 && amount < product.FirstBid {
		return fmt.Errorf("service: %w - opening bid is %.2f", auctionerrors.ErrBidTooLow, product.FirstBid)
	}

	return nil
}

// BidsForProduct returns all bids for a specific product
func (s *BiddingService) BidsForProduct(ctx context.Context, productID uint) ([]models.Bid, error) {
	if productID == 0 {
		return nil, fmt.Errorf("service: %w - missing product ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.BidsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %d: %w", productID, err)
	}

	return bids, nil
}
