package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr0stylo/vtexgate/internal/aggregate"
	"github.com/fr0stylo/vtexgate/internal/app/ports"
)

// SKUDetailsUnavailable is set as "error" on cart entries whose SKU lookup failed.
const SKUDetailsUnavailable = "Failed to fetch SKU details"

// ErrEmptyDetail reports a successful lookup that returned no body.
var ErrEmptyDetail = errors.New("empty detail")

// CartService serves checkout order forms.
type CartService struct {
	commerce   ports.Commerce
	aggregator *aggregate.Aggregator
}

func NewCartService(commerce ports.Commerce, aggregator *aggregate.Aggregator) *CartService {
	return &CartService{commerce: commerce, aggregator: aggregator}
}

// NewCart opens a fresh order form.
func (s *CartService) NewCart(ctx context.Context) (any, error) {
	return s.commerce.NewOrderForm(ctx)
}

// CartWithProductDetails returns the order form with a "productDetails" list:
// one entry per cart item carrying "skuDetails". Items whose SKU cannot be
// loaded keep a null "skuDetails" and an "error" message.
func (s *CartService) CartWithProductDetails(ctx context.Context, orderFormID string) (map[string]any, error) {
	orderForm, err := s.commerce.OrderForm(ctx, orderFormID)
	if err != nil {
		return nil, fmt.Errorf("load order form %s: %w", orderFormID, err)
	}

	cart := copyObject(orderForm)
	cart["productDetails"] = s.aggregator.Merge(ctx, aggregate.Children(orderForm, "items"), aggregate.Plan{
		Name:  "cart-sku",
		Key:   "skuDetails",
		Ref:   aggregate.Field("id"),
		Fetch: requireDetail(s.commerce.SKU),
		OnFailure: func(entry map[string]any, _ error) {
			entry["skuDetails"] = nil
			entry["error"] = SKUDetailsUnavailable
		},
	})
	return cart, nil
}

// AddToCart forwards orderItems to the order form and relays the upstream answer.
func (s *CartService) AddToCart(ctx context.Context, orderFormID string, orderItems any) (ports.ForwardedResponse, error) {
	resp, err := s.commerce.AddOrderItems(ctx, orderFormID, orderItems)
	if err != nil {
		return ports.ForwardedResponse{}, fmt.Errorf("add items to order form %s: %w", orderFormID, err)
	}
	return resp, nil
}

// requireDetail treats an empty upstream body as a failed lookup so cart items
// share one failure shape.
func requireDetail(fetch func(context.Context, string) (any, error)) func(context.Context, string) (any, error) {
	return func(ctx context.Context, ref string) (any, error) {
		detail, err := fetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		if detail == nil {
			return nil, fmt.Errorf("sku %s: %w", ref, ErrEmptyDetail)
		}
		return detail, nil
	}
}
