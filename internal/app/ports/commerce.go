package ports

import "context"

// ForwardedResponse is an upstream response relayed to the caller unchanged.
type ForwardedResponse struct {
	StatusCode int
	Body       any
}

// Commerce is the upstream catalog and checkout API as seen by the services.
// Bodies are decoded JSON values.
type Commerce interface {
	CollectionProducts(ctx context.Context, collectionID string) (any, error)
	CollectionSearch(ctx context.Context) (any, error)
	SearchProducts(ctx context.Context, query string) (any, error)
	ProductVariations(ctx context.Context, productID string) (any, error)
	SKU(ctx context.Context, skuID string) (any, error)
	Price(ctx context.Context, skuID string) (any, error)
	WhoBoughtAlsoBought(ctx context.Context, productID string) (any, error)
	OrderForm(ctx context.Context, orderFormID string) (any, error)
	NewOrderForm(ctx context.Context) (any, error)
	AddOrderItems(ctx context.Context, orderFormID string, orderItems any) (ForwardedResponse, error)
}
