package store

import "errors"

// Errors returned by catalog and ledger operations. They are always wrapped
// with some context, use errors.Is to test them.
var (
	// ErrInvalidPrice is returned when a supplied price is negative.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrProductNotFound is returned when a product name has no catalog entry.
	ErrProductNotFound = errors.New("product not found")
	// ErrNoFieldsProvided is returned when an edit does not change anything.
	ErrNoFieldsProvided = errors.New("no fields provided")
	// ErrInsufficientStock is returned when a sale asks for more units than in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
