package vtex

import (
	"context"

	"github.com/fr0stylo/vtexgate/internal/app/ports"
)

// API exposes the upstream endpoints the gateway relies on.
type API struct {
	client    *Client
	endpoints Endpoints
}

var _ ports.Commerce = (*API)(nil)

func NewAPI(client *Client, endpoints Endpoints) *API {
	return &API{client: client, endpoints: endpoints}
}

func (a *API) CollectionProducts(ctx context.Context, collectionID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.CollectionProducts(collectionID))
}

func (a *API) CollectionSearch(ctx context.Context) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.CollectionSearch())
}

func (a *API) SearchProducts(ctx context.Context, query string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.ProductSearch(query))
}

func (a *API) ProductVariations(ctx context.Context, productID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.ProductVariations(productID))
}

func (a *API) SKU(ctx context.Context, skuID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.SKU(skuID))
}

func (a *API) Price(ctx context.Context, skuID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.Price(skuID))
}

func (a *API) WhoBoughtAlsoBought(ctx context.Context, productID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.WhoBoughtAlsoBought(productID))
}

func (a *API) OrderForm(ctx context.Context, orderFormID string) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.OrderForm(orderFormID))
}

func (a *API) NewOrderForm(ctx context.Context) (any, error) {
	return a.client.GetJSON(ctx, a.endpoints.NewOrderForm())
}

func (a *API) AddOrderItems(ctx context.Context, orderFormID string, orderItems any) (ports.ForwardedResponse, error) {
	resp, err := a.client.PostJSON(ctx, a.endpoints.OrderFormItems(orderFormID), map[string]any{
		"orderItems": orderItems,
	})
	if err != nil {
		return ports.ForwardedResponse{}, err
	}
	return ports.ForwardedResponse{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}
