package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	BidderID  uint    `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID      uint    `json:"bid_id"`
	ProductID  uint    `json:"product_id"`
	BidderID   uint    `json:"bidder_id"`
	Amount     float64 `json:"amount"`
	CreatedAt  int64   `json:"created_at"`
	CurrentBid float64 `json:"current_bid"`
	BidCount   int     `json:"bid_count"`
	Active     bool    `json:"active"`
}
