package models

// User represents a registered marketplace account. Identity is managed
// upstream; this layer only stores and forwards user identifiers.
type User struct {
	UserID   uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
}

// TableName maps User to the users table.
func (User) TableName() string { return "users" }

// Location is the place a product is offered from.
type Location struct {
	LocationID uint    `gorm:"column:location_id;primaryKey;autoIncrement" json:"location_id"`
	Name       string  `gorm:"type:varchar(510)" json:"name"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
}

// TableName maps Location to the locations table.
func (Location) TableName() string { return "locations" }

// Category groups products; a product may belong to several categories.
type Category struct {
	CategoryID uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName maps Category to the categories table.
func (Category) TableName() string { return "categories" }

// Product represents an auction listing. Active is stored state: it starts
// true and flips to false permanently once the buy-now price is met or the
// ending date passes. Date fields are epoch milliseconds.
type Product struct {
	ProductID    uint       `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	ImgURL       string     `gorm:"column:img_url;type:varchar(510)" json:"img_url"`
	CurrentBid   float64    `gorm:"type:float" json:"current_bid"`
	BuyPrice     *float64   `gorm:"type:float;default:null" json:"buy_price"`
	FirstBid     float64    `gorm:"type:float" json:"first_bid"`
	NumberOfBids int        `json:"number_of_bids"`
	StartingDate int64      `json:"starting_date"`
	EndingDate   int64      `json:"ending_date"`
	Description  string     `gorm:"type:text" json:"description"`
	Active       bool       `gorm:"index" json:"active"`
	LocationID   *uint      `gorm:"default:null" json:"location_id"`
	SellerID     uint       `gorm:"index" json:"seller_id"`
	Categories   []Category `gorm:"many2many:product_categories;joinForeignKey:ProductID;joinReferences:CategoryID" json:"categories,omitempty"`
}

// TableName maps Product to the products table.
func (Product) TableName() string { return "products" }

// Bid is one user's bid on a product. Bids are append-only; they are never
// mutated or deleted. CreatedAt is epoch milliseconds.
type Bid struct {
	BidID     uint    `gorm:"column:bid_id;primaryKey;autoIncrement" json:"bid_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	BidderID  uint    `gorm:"not null" json:"bidder_id"`
	Amount    float64 `gorm:"type:float" json:"amount"`
	CreatedAt int64   `json:"created_at"`
}

// TableName maps Bid to the bids table.
func (Bid) TableName() string { return "bids" }

// SearchQuery parameterizes a product search. It is transient, never
// persisted. Nil bounds mean the corresponding filter is not applied; present
// bounds are inclusive.
type SearchQuery struct {
	Text       string   `json:"text"`
	MinBid     *float64 `json:"min_bid"`
	MaxBid     *float64 `json:"max_bid"`
	MinBuyNow  *float64 `json:"min_buy_now"`
	MaxBuyNow  *float64 `json:"max_buy_now"`
	CategoryID *uint    `json:"category_id"`
}
