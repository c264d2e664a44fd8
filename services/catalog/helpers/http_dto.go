package helpers

// Request/Response DTOs
type AddProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	ImgURL       string   `json:"img_url" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	FirstBid     float64  `json:"first_bid" binding:"required,gt=0"`
	BuyPrice     *float64 `json:"buy_price"`
	StartingDate int64    `json:"starting_date"`
	EndingDate   int64    `json:"ending_date" binding:"required"`
	SellerID     uint     `json:"seller_id" binding:"required"`
	LocationID   *uint    `json:"location_id"`
	CategoryIDs  []uint   `json:"category_ids"`
}

type AddProductResponse struct {
	ProductID uint `json:"product_id"`
}

type SearchRequest struct {
	Text       string   `json:"text" binding:"required"`
	MinBid     *float64 `json:"min_bid"`
	MaxBid     *float64 `json:"max_bid"`
	MinBuyNow  *float64 `json:"min_buy_now"`
	MaxBuyNow  *float64 `json:"max_buy_now"`
	CategoryID *uint    `json:"category_id"`
}

type ProductIDsResponse struct {
	ProductIDs []uint `json:"product_ids"`
}
