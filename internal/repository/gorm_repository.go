package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the relational implementation of CatalogDB backed by gorm.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on top of an open gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the marketplace tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.Location{},
		&model.Category{},
		&model.Product{},
		&model.Bid{},
	)
}

// InsertProduct persists a new product after validating required fields.
func (s *Store) InsertProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("insert product %q: %w", product.Name, err)
	}
	return nil
}

// GetProductByID returns a single product with its categories preloaded.
func (s *Store) GetProductByID(ctx context.Context, id uint) (model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).
		Preload("Categories").
		First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, fmt.Errorf("get product %d: %w", id, auctionerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// ListProducts returns every product in store order.
func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListActiveProducts returns every product still open for bidding.
func (s *Store) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Where("active = ?", true).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return products, nil
}

// ListProductIDs returns every product identifier.
func (s *Store) ListProductIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list product ids: %w", err)
	}
	return ids, nil
}

// ListActiveProductIDs returns the identifiers of active products.
func (s *Store) ListActiveProductIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("active = ?", true).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list active product ids: %w", err)
	}
	return ids, nil
}

// ProductIDsBySeller returns the identifiers of a seller's listings.
func (s *Store) ProductIDsBySeller(ctx context.Context, sellerID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("seller_id = ?", sellerID).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list products for seller %d: %w", sellerID, err)
	}
	return ids, nil
}

// ProductIDsByCategory returns the identifiers of products in a category,
// optionally restricted to active listings.
func (s *Store) ProductIDsByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]uint, error) {
	q := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Joins("JOIN product_categories pc ON pc.product_id = products.product_id").
		Where("pc.category_id = ?", categoryID)
	if activeOnly {
		q = q.Where("products.active = ?", true)
	}
	var ids []uint
	if err := q.Pluck("products.product_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list products for category %d: %w", categoryID, err)
	}
	return ids, nil
}

// ExpireOverdue deactivates every active product whose ending date has passed.
// It returns the number of listings expired and never reactivates a product.
func (s *Store) ExpireOverdue(ctx context.Context, now int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("active = ? AND ending_date < ?", true, now).
		Update("active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("expire overdue products: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ApplyBid applies a bid inside one transaction: the product row is locked,
// the bid counter and current bid are updated, a bid exactly meeting the
// buy-now price deactivates the listing, and the bid record is appended.
func (s *Store) ApplyBid(ctx context.Context, bid model.Bid) (model.Bid, model.Product, error) {
	var updated model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "product_id = ?", bid.ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("apply bid to product %d: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
		}
		if err != nil {
			return fmt.Errorf("apply bid to product %d: %w", bid.ProductID, err)
		}

		p.NumberOfBids++
		p.CurrentBid = bid.Amount
		p.Active = nextActive(p, bid.Amount)

		err = tx.Model(&model.Product{}).
			Where("product_id = ?", p.ProductID).
			Updates(map[string]any{
				"number_of_bids": p.NumberOfBids,
				"current_bid":    p.CurrentBid,
				"active":         p.Active,
			}).Error
		if err != nil {
			return fmt.Errorf("apply bid to product %d: %w", bid.ProductID, err)
		}

		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("record bid for product %d: %w", bid.ProductID, err)
		}

		updated = p
		return nil
	})
	if err != nil {
		return model.Bid{}, model.Product{}, err
	}
	return bid, updated, nil
}

// BidsByProduct returns all bids for a product, oldest first.
func (s *Store) BidsByProduct(ctx context.Context, productID uint) ([]model.Bid, error) {
	var bids []model.Bid
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("get bids for product %d: %w", productID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %d: %w", productID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// SearchProductIDs runs one filtered substring sub-query against the chosen
// column and returns matching identifiers in store order.
func (s *Store) SearchProductIDs(ctx context.Context, field MatchField, pattern string, query model.SearchQuery) ([]uint, error) {
	q := s.db.WithContext(ctx).Model(&model.Product{})

	like := "%" + strings.ToLower(pattern) + "%"
	switch field {
	case MatchName:
		q = q.Where("LOWER(products.name) LIKE ?", like)
	case MatchDescription:
		q = q.Where("LOWER(products.description) LIKE ?", like)
	default:
		return nil, fmt.Errorf("search products: unknown match field %d", field)
	}

	q = applySearchFilters(q, query)

	var ids []uint
	if err := q.Pluck("products.product_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("search products for %q: %w", pattern, err)
	}
	return ids, nil
}

// applySearchFilters adds the optional bid-range, buy-now-range and category
// constraints. A clause is added only when the corresponding bound is present;
// bounds are inclusive, single-sided bounds use open-ended comparisons.
func applySearchFilters(q *gorm.DB, query model.SearchQuery) *gorm.DB {
	switch {
	case query.MinBid != nil && query.MaxBid != nil:
		q = q.Where("products.current_bid BETWEEN ? AND ?", *query.MinBid, *query.MaxBid)
	case query.MinBid != nil:
		q = q.Where("products.current_bid >= ?", *query.MinBid)
	case query.MaxBid != nil:
		q = q.Where("products.current_bid <= ?", *query.MaxBid)
	}

	switch {
	case query.MinBuyNow != nil && query.MaxBuyNow != nil:
		q = q.Where("products.buy_price BETWEEN ? AND ?", *query.MinBuyNow, *query.MaxBuyNow)
	case query.MinBuyNow != nil:
		q = q.Where("products.buy_price >= ?", *query.MinBuyNow)
	case query.MaxBuyNow != nil:
		q = q.Where("products.buy_price <= ?", *query.MaxBuyNow)
	}

	if query.CategoryID != nil {
		q = q.Joins("JOIN product_categories pc ON pc.product_id = products.product_id").
			Where("pc.category_id = ?", *query.CategoryID)
	}

	return q
}
