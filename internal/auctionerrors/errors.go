package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoBids          = errors.New("no bids found for product")
	ErrValidation      = errors.New("product validation failed")
)

// business logic errors
var (
	ErrInvalidBid = errors.New("invalid bid")
	ErrBidTooLow  = errors.New("bid amount too low")
)
