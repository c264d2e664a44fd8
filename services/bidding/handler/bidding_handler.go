package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/bidding/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, productID, bidderID uint, amount float64) (model.Bid, model.Product, error)
	BidsForProduct(ctx context.Context, productID uint) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, product, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": req.ProductID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:      bid.BidID,
		ProductID:  bid.ProductID,
		BidderID:   bid.BidderID,
		Amount:     bid.Amount,
		CreatedAt:  bid.CreatedAt,
		CurrentBid: product.CurrentBid,
		BidCount:   product.NumberOfBids,
		Active:     product.Active,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
		"active":     product.Active,
	})
}

// GetBidsByProductHandler handles GET /products/:product_id/bids
func (h *BiddingHandler) GetBidsByProductHandler(c *gin.Context) {
	raw := c.Param("product_id")
	id, parseErr := strconv.ParseUint(raw, 10, 32)
	if parseErr != nil || id == 0 {
		badParam := fmt.Errorf("invalid product_id: %q", raw)
		utils.JSONError(c, http.StatusBadRequest, badParam, "invalid identifier")
		utils.Warn("GetBidsByProductHandler: invalid path parameter", map[string]any{"value": raw})
		return
	}

	bids, err := h.service.BidsForProduct(c.Request.Context(), uint(id))
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByProductHandler: error retrieving bids", map[string]any{"product_id": id, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProductHandler", "bids retrieved successfully", map[string]any{
		"product_id": id,
		"count":      len(bids),
	})
}
