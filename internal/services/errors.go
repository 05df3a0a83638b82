package services

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks a checkout request rejected before any database
// work. Wrapped errors carry the specific field failure.
var ErrInvalidRequest = errors.New("invalid checkout request")

// ProductNotFoundError names the product a checkout referenced that the
// tenant catalog does not contain.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// InsufficientStockError reports a stock shortfall for one product.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)",
		e.ProductID, e.Requested, e.Available)
}
