package services

import (
	"context"
	"fmt"

	"github.com/fr0stylo/vtexgate/internal/aggregate"
	"github.com/fr0stylo/vtexgate/internal/app/domain"
	"github.com/fr0stylo/vtexgate/internal/app/ports"
)

// CatalogService serves catalog reads, enriching listings with per-item details.
type CatalogService struct {
	commerce   ports.Commerce
	aggregator *aggregate.Aggregator
}

func NewCatalogService(commerce ports.Commerce, aggregator *aggregate.Aggregator) *CatalogService {
	return &CatalogService{commerce: commerce, aggregator: aggregator}
}

func (s *CatalogService) CollectionProducts(ctx context.Context, collectionID string) (any, error) {
	return s.commerce.CollectionProducts(ctx, collectionID)
}

func (s *CatalogService) Collections(ctx context.Context) (any, error) {
	return s.commerce.CollectionSearch(ctx)
}

func (s *CatalogService) SKU(ctx context.Context, skuID string) (any, error) {
	return s.commerce.SKU(ctx, skuID)
}

func (s *CatalogService) Price(ctx context.Context, skuID string) (any, error) {
	return s.commerce.Price(ctx, skuID)
}

// SearchProducts runs a full-text search and attaches each product's
// variations under "skus". A product whose variations cannot be loaded gets an
// empty list.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]any, error) {
	result, err := s.commerce.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return s.aggregator.Merge(ctx, aggregate.Children(result, ""), aggregate.Plan{
		Name:  "product-variations",
		Key:   "skus",
		Ref:   aggregate.Field("productId"),
		Fetch: s.commerce.ProductVariations,
		OnFailure: func(entry map[string]any, _ error) {
			entry["skus"] = []any{}
		},
	}), nil
}

// Recommendations resolves the product behind skuID and returns its
// who-bought-also-bought cross-selling list.
func (s *CatalogService) Recommendations(ctx context.Context, skuID string) (any, error) {
	sku, err := s.commerce.SKU(ctx, skuID)
	if err != nil {
		return nil, fmt.Errorf("load sku %s: %w", skuID, err)
	}
	obj, _ := sku.(map[string]any)
	productID, ok := aggregate.StringField(obj, "ProductId")
	if !ok {
		return nil, fmt.Errorf("sku %s: %w", skuID, ErrProductNotLinked)
	}
	recommendations, err := s.commerce.WhoBoughtAlsoBought(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load recommendations for product %s: %w", productID, err)
	}
	return recommendations, nil
}

// Product returns the product variations with every SKU's catalog record
// merged under "additionalDetails" (null when it could not be loaded).
func (s *CatalogService) Product(ctx context.Context, productID string) (map[string]any, error) {
	variations, err := s.commerce.ProductVariations(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load variations for product %s: %w", productID, err)
	}
	skus := aggregate.Children(variations, "skus")
	if len(skus) == 0 {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNoSKUs)
	}

	product := copyObject(variations)
	product["skus"] = s.aggregator.Merge(ctx, skus, aggregate.Plan{
		Name:  "product-sku",
		Key:   "additionalDetails",
		Ref:   aggregate.Field("sku"),
		Fetch: s.commerce.SKU,
	})
	return product, nil
}

// CollectionProductDetails lists a collection and merges each product's SKU
// record under "SkuDetails" (null when it could not be loaded).
func (s *CatalogService) CollectionProductDetails(ctx context.Context, collectionID string) (domain.CollectionProductDetails, error) {
	listing, err := s.commerce.CollectionProducts(ctx, collectionID)
	if err != nil {
		return domain.CollectionProductDetails{}, fmt.Errorf("load collection %s: %w", collectionID, err)
	}
	products := aggregate.Children(listing, "Data")
	if len(products) == 0 {
		return domain.CollectionProductDetails{}, fmt.Errorf("collection %s: %w", collectionID, ErrEmptyCollection)
	}

	return domain.CollectionProductDetails{
		CollectionID: collectionID,
		Products: s.aggregator.Merge(ctx, products, aggregate.Plan{
			Name:  "collection-sku",
			Key:   "SkuDetails",
			Ref:   aggregate.Field("SkuId"),
			Fetch: s.commerce.SKU,
		}),
	}, nil
}

func copyObject(value any) map[string]any {
	obj, _ := value.(map[string]any)
	out := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	return out
}
