package domain

// CollectionProductDetails is a collection listing with SKU details merged onto
// every product.
type CollectionProductDetails struct {
	CollectionID string `json:"CollectionId"`
	Products     []any  `json:"Products"`
}
