package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func activeProduct(id uint, currentBid, firstBid float64, bids int) model.Product {
	return model.Product{
		ProductID:    id,
		Name:         "product",
		CurrentBid:   currentBid,
		FirstBid:     firstBid,
		NumberOfBids: bids,
		Active:       true,
	}
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	now := time.Now().UnixMilli()

	// Table-driven test cases
	tests := []struct {
		name          string
		productID     uint
		bidderID      uint
		amount        float64
		mockSetup     func(mockRepo *repository.MockCatalogDB)
		expectError   bool
		expectedError error
		wantActive    bool
	}{
		{
			name:      "valid_opening_bid",
			productID: 1,
			bidderID:  2,
			amount:    100,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).
					Return(activeProduct(1, 50, 50, 0), nil)
				mockRepo.EXPECT().ApplyBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, bid model.Bid) (model.Bid, model.Product, error) {
						bid.BidID = 7
						p := activeProduct(1, bid.Amount, 50, 1)
						return bid, p, nil
					})
			},
			wantActive: true,
		},
		{
			name:      "bid_meets_buy_price",
			productID: 1,
			bidderID:  2,
			amount:    200,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				p := activeProduct(1, 50, 50, 3)
				p.BuyPrice = fptr(200)
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).Return(p, nil)
				mockRepo.EXPECT().ApplyBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, bid model.Bid) (model.Bid, model.Product, error) {
						bid.BidID = 8
						sold := activeProduct(1, bid.Amount, 50, 4)
						sold.Active = false
						return bid, sold, nil
					})
			},
			wantActive: false,
		},
		{
			name:          "zero_product_id",
			productID:     0,
			bidderID:      2,
			amount:        50,
			mockSetup:     func(*repository.MockCatalogDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "zero_bidder_id",
			productID:     1,
			bidderID:      0,
			amount:        50,
			mockSetup:     func(*repository.MockCatalogDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:          "non_positive_amount",
			productID:     1,
			bidderID:      2,
			amount:        0,
			mockSetup:     func(*repository.MockCatalogDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "product_not_found",
			productID: 404,
			bidderID:  2,
			amount:    50,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(404)).
					Return(model.Product{}, auctionerrors.ErrProductNotFound)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrProductNotFound,
		},
		{
			name:      "closed_listing",
			productID: 1,
			bidderID:  2,
			amount:    80,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				p := activeProduct(1, 50, 50, 2)
				p.Active = false
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).Return(p, nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "bid_not_above_current",
			productID: 1,
			bidderID:  2,
			amount:    100,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).
					Return(activeProduct(1, 100, 50, 2), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "opening_bid_below_first_bid",
			productID: 1,
			bidderID:  2,
			amount:    49.99,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).
					Return(activeProduct(1, 50, 50, 0), nil)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "repo_fails",
			productID: 1,
			bidderID:  2,
			amount:    120,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().GetProductByID(gomock.Any(), uint(1)).
					Return(activeProduct(1, 100, 50, 2), nil)
				mockRepo.EXPECT().ApplyBid(gomock.Any(), gomock.Any()).
					Return(model.Bid{}, model.Product{}, errors.New("repo write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error, we don't match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockCatalogDB(ctrl)
			service := NewBiddingService(mockRepo)
			tc.mockSetup(mockRepo)

			bid, product, err := service.PlaceBid(context.Background(), tc.productID, tc.bidderID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				require.NotZero(t, bid.BidID)
				require.Equal(t, tc.productID, bid.ProductID)
				require.Equal(t, tc.bidderID, bid.BidderID)
				require.Equal(t, tc.amount, bid.Amount)
				require.InDelta(t, now, bid.CreatedAt, float64(2*time.Second/time.Millisecond))

				require.Equal(t, tc.amount, product.CurrentBid)
				require.Equal(t, tc.wantActive, product.Active)
			}
		})
	}
}

// Tests BidsForProduct
func TestBiddingService_BidsForProduct(t *testing.T) {
	bidsExample := []model.Bid{
		{BidID: 1, ProductID: 1, BidderID: 1, Amount: 100, CreatedAt: 1000},
		{BidID: 2, ProductID: 1, BidderID: 2, Amount: 150, CreatedAt: 2000},
	}

	tests := []struct {
		name          string
		productID     uint
		mockSetup     func(mockRepo *repository.MockCatalogDB)
		expectError   bool
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:      "product_with_bids",
			productID: 1,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().BidsByProduct(gomock.Any(), uint(1)).Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:      "product_without_bids",
			productID: 2,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().BidsByProduct(gomock.Any(), uint(2)).
					Return(nil, auctionerrors.ErrNoBids)
			},
			expectError:   true,
			expectedError: auctionerrors.ErrNoBids,
		},
		{
			name:          "zero_product_id",
			productID:     0,
			mockSetup:     func(*repository.MockCatalogDB) {},
			expectError:   true,
			expectedError: auctionerrors.ErrInvalidBid,
		},
		{
			name:      "repo_error",
			productID: 3,
			mockSetup: func(mockRepo *repository.MockCatalogDB) {
				mockRepo.EXPECT().BidsByProduct(gomock.Any(), uint(3)).
					Return(nil, errors.New("db failure"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockCatalogDB(ctrl)
			service := NewBiddingService(mockRepo)
			tc.mockSetup(mockRepo)

			bids, err := service.BidsForProduct(context.Background(), tc.productID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}
