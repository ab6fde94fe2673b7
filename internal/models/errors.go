package models

import "errors"

// Sentinel errors for catalog and order coordination. Read-only lookups
// never return these; a miss there degrades to a neutral zero value instead.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotInOrder      = errors.New("product not in order")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoOpenOrder     = errors.New("no open order")
)
