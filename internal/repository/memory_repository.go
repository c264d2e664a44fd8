package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of CatalogDB.
// It is used for local development and tests; insertion order stands in for
// the relational store's natural result order.
type MemoryRepo struct {
	mu         sync.RWMutex
	products   map[uint]model.Product
	order      []uint                // product IDs in insertion order
	bids       map[uint][]model.Bid  // key: productID -> bids, oldest first
	categories map[uint][]uint       // key: categoryID -> productIDs
	nextProd   uint
	nextBid    uint
}

// NewMemoryRepo creates an empty in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:   make(map[uint]model.Product),
		bids:       make(map[uint][]model.Bid),
		categories: make(map[uint][]uint),
	}
}

// InsertProduct persists a new product after validating required fields,
// assigning the generated identifier.
func (r *MemoryRepo) InsertProduct(_ context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextProd++
	product.ProductID = r.nextProd
	r.products[product.ProductID] = *product
	r.order = append(r.order, product.ProductID)

	for _, c := range product.Categories {
		r.categories[c.CategoryID] = append(r.categories[c.CategoryID], product.ProductID)
	}
	return nil
}

// GetProductByID returns a single product.
func (r *MemoryRepo) GetProductByID(_ context.Context, id uint) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %d: %w", id, auctionerrors.ErrProductNotFound)
	}
	return p, nil
}

// ListProducts returns every product in insertion order.
func (r *MemoryRepo) ListProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// ListActiveProducts returns every product still open for bidding.
func (r *MemoryRepo) ListActiveProducts(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []model.Product
	for _, id := range r.order {
		if p := r.products[id]; p.Active {
			products = append(products, p)
		}
	}
	return products, nil
}

// ListProductIDs returns every product identifier.
func (r *MemoryRepo) ListProductIDs(_ context.Context) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]uint(nil), r.order...), nil
}

// ListActiveProductIDs returns the identifiers of active products.
func (r *MemoryRepo) ListActiveProductIDs(_ context.Context) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint
	for _, id := range r.order {
		if r.products[id].Active {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ProductIDsBySeller returns the identifiers of a seller's listings.
func (r *MemoryRepo) ProductIDsBySeller(_ context.Context, sellerID uint) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint
	for _, id := range r.order {
		if r.products[id].SellerID == sellerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ProductIDsByCategory returns the identifiers of products in a category,
// optionally restricted to active listings.
func (r *MemoryRepo) ProductIDsByCategory(_ context.Context, categoryID uint, activeOnly bool) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint
	for _, id := range r.categories[categoryID] {
		if activeOnly && !r.products[id].Active {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ExpireOverdue deactivates every active product whose ending date has passed
// and returns the number of listings expired.
func (r *MemoryRepo) ExpireOverdue(_ context.Context, now int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired int64
	for id, p := range r.products {
		if p.Active && p.EndingDate < now {
			p.Active = false
			r.products[id] = p
			expired++
		}
	}
	return expired, nil
}

// ApplyBid applies a bid under the write lock: counter, current bid and the
// buy-now deactivation check update together with the appended bid record.
func (r *MemoryRepo) ApplyBid(_ context.Context, bid model.Bid) (model.Bid, model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[bid.ProductID]
	if !ok {
		return model.Bid{}, model.Product{}, fmt.Errorf("apply bid to product %d: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}

	p.NumberOfBids++
	p.CurrentBid = bid.Amount
	p.Active = nextActive(p, bid.Amount)
	r.products[bid.ProductID] = p

	r.nextBid++
	bid.BidID = r.nextBid
	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bid)

	return bid, p, nil
}

// BidsByProduct returns all bids for a product, oldest first.
func (r *MemoryRepo) BidsByProduct(_ context.Context, productID uint) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %d: %w", productID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// SearchProductIDs runs one filtered substring sub-query against the chosen
// field and returns matching identifiers in insertion order.
func (r *MemoryRepo) SearchProductIDs(_ context.Context, field MatchField, pattern string, query model.SearchQuery) ([]uint, error) {
	if field != MatchName && field != MatchDescription {
		return nil, fmt.Errorf("search products: unknown match field %d", field)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(pattern)

	var ids []uint
	for _, id := range r.order {
		p := r.products[id]

		haystack := p.Name
		if field == MatchDescription {
			haystack = p.Description
		}
		if !strings.Contains(strings.ToLower(haystack), needle) {
			continue
		}
		if !r.matchesFilters(p, query) {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// matchesFilters mirrors the relational store's optional search constraints:
// inclusive bounds, open-ended when one side is absent, and products without
// a buy-now price never match a buy-now bound. Caller holds the read lock.
func (r *MemoryRepo) matchesFilters(p model.Product, query model.SearchQuery) bool {
	if query.MinBid != nil && p.CurrentBid < *query.MinBid {
		return false
	}
	if query.MaxBid != nil && p.CurrentBid > *query.MaxBid {
		return false
	}
	if query.MinBuyNow != nil && (p.BuyPrice == nil || *p.BuyPrice < *query.MinBuyNow) {
		return false
	}
	if query.MaxBuyNow != nil && (p.BuyPrice == nil || *p.BuyPrice > *query.MaxBuyNow) {
		return false
	}
	if query.CategoryID != nil {
		inCategory := false
		for _, id := range r.categories[*query.CategoryID] {
			if id == p.ProductID {
				inCategory = true
				break
			}
		}
		if !inCategory {
			return false
		}
	}
	return true
}

// AddCategory associates a product with a category. This method is intended
// for tests and seeding only.
func (r *MemoryRepo) AddCategory(categoryID, productID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[categoryID] = append(r.categories[categoryID], productID)
}
