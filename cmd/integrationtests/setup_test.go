package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bidding "auction-marketplace/internal/biddingService"
	catalog "auction-marketplace/internal/catalogService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	search "auction-marketplace/internal/searchService"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing, returning the repo for seeding and inspection.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	catalogSvc := catalog.NewCatalogService(repo)
	searchSvc := search.NewSearchService(repo)
	biddingSvc := bidding.NewBiddingService(repo)

	router := server.SetupRouter(catalogSvc, searchSvc, biddingSvc)
	return router, repo
}

// SeedProduct inserts a product directly into the repository.
func SeedProduct(t *testing.T, repo *repository.MemoryRepo, p model.Product) uint {
	t.Helper()
	if err := repo.InsertProduct(context.Background(), &p); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return p.ProductID
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// listingFixture returns a valid active listing for seeding.
func listingFixture(name string, firstBid float64) model.Product {
	return model.Product{
		Name:         name,
		ImgURL:       "http://images/" + name,
		Description:  name + " description",
		FirstBid:     firstBid,
		CurrentBid:   firstBid,
		StartingDate: 1000,
		EndingDate:   4_000_000_000_000, // far future
		Active:       true,
		SellerID:     1,
	}
}
