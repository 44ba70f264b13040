package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every error reporting a required related resource
// as absent.
var ErrNotFound = errors.New("not found")

var (
	// ErrProductNotLinked reports a SKU without a ProductId.
	ErrProductNotLinked = fmt.Errorf("product id for sku: %w", ErrNotFound)
	// ErrNoSKUs reports a product whose variations list no SKUs.
	ErrNoSKUs = fmt.Errorf("skus for product: %w", ErrNotFound)
	// ErrEmptyCollection reports a collection without products.
	ErrEmptyCollection = fmt.Errorf("products in collection: %w", ErrNotFound)
)
