package search

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// minTermLen is the shortest individual search term considered in the
// per-term tiers; shorter words ("a", "of") would match almost everything.
const minTermLen = 3

// SearchService composes tiered product searches over the catalog store
type SearchService struct {
	repo repository.CatalogDB
}

// NewSearchService creates a new SearchService instance
func NewSearchService(repo repository.CatalogDB) *SearchService {
	return &SearchService{
		repo: repo,
	}
}

// Search returns distinct product identifiers ranked by relevance tier,
// highest tier first:
//
//  1. name contains the full phrase
//  2. description contains the full phrase
//  3. name contains any individual term of the phrase
//  4. description contains any such term
//
// Identifiers already selected by a higher tier are suppressed; within a tier
// the store's natural result order is preserved. Every sub-query carries the
// query's optional bid-range, buy-now-range and category filters.
// Location-term matching is not implemented.
func (s *SearchService) Search(ctx context.Context, query models.SearchQuery) ([]uint, error) {
	if strings.TrimSpace(query.Text) == "" {
		return nil, fmt.Errorf("service: %w - empty search text", auctionerrors.ErrValidation)
	}

	results := newIDSet()

	// Tier 1: full phrase against names
	ids, err := s.repo.SearchProductIDs(ctx, repository.MatchName, query.Text, query)
	if err != nil {
		return nil, fmt.Errorf("service: name search for %q failed: %w", query.Text, err)
	}
	results.addAll(ids)

	// Tier 2: full phrase against descriptions
	ids, err = s.repo.SearchProductIDs(ctx, repository.MatchDescription, query.Text, query)
	if err != nil {
		return nil, fmt.Errorf("service: description search for %q failed: %w", query.Text, err)
	}
	results.addAll(ids)

	terms := splitTerms(query.Text)

	// Tiers 3 and 4 accumulate separately so every name match across all
	// terms precedes the first description-only match.
	titleMatches := newIDSet()
	descMatches := newIDSet()

	for _, term := range terms {
		ids, err = s.repo.SearchProductIDs(ctx, repository.MatchName, term, query)
		if err != nil {
			return nil, fmt.Errorf("service: name search for term %q failed: %w", term, err)
		}
		titleMatches.addAll(ids)

		ids, err = s.repo.SearchProductIDs(ctx, repository.MatchDescription, term, query)
		if err != nil {
			return nil, fmt.Errorf("service: description search for term %q failed: %w", term, err)
		}
		descMatches.addAll(ids)
	}

	results.addAll(titleMatches.ordered)
	results.addAll(descMatches.ordered)

	return results.ordered, nil
}

// splitTerms extracts the whitespace-separated terms long enough to search on
func splitTerms(text string) []string {
	var terms []string
	for _, term := range strings.Fields(text) {
		if len(term) >= minTermLen {
			terms = append(terms, term)
		}
	}
	return terms
}

// idSet is an insertion-ordered set of product identifiers. It keeps the
// first-seen order across tiers while suppressing duplicates.
type idSet struct {
	seen    map[uint]struct{}
	ordered []uint
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uint]struct{}), ordered: []uint{}}
}

func (s *idSet) addAll(ids []uint) {
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ordered = append(s.ordered, id)
	}
}
