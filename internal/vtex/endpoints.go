package vtex

import (
	"net/url"
	"strings"
)

// Endpoints builds upstream URLs.
type Endpoints struct {
	baseURL             string
	accountName         string
	collectionSearchURL string
}

func NewEndpoints(baseURL, accountName, collectionSearchURL string) Endpoints {
	return Endpoints{
		baseURL:             strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		accountName:         strings.Trim(strings.TrimSpace(accountName), "/"),
		collectionSearchURL: strings.TrimSpace(collectionSearchURL),
	}
}

func (e Endpoints) CollectionProducts(collectionID string) string {
	return e.join("api/catalog/pvt/collection", collectionID, "products")
}

// CollectionSearch lists collections. It targets a fixed URL rather than the base URL.
func (e Endpoints) CollectionSearch() string {
	return e.collectionSearchURL
}

func (e Endpoints) ProductSearch(query string) string {
	return e.join("api/catalog_system/pub/products/search", query)
}

func (e Endpoints) ProductVariations(productID string) string {
	return e.join("api/catalog_system/pub/products/variations", productID)
}

func (e Endpoints) SKU(skuID string) string {
	return e.join("api/catalog_system/pvt/sku/stockkeepingunitbyid", skuID)
}

func (e Endpoints) Price(skuID string) string {
	return e.join(e.accountName+"/pricing/prices", skuID)
}

func (e Endpoints) WhoBoughtAlsoBought(productID string) string {
	return e.join("api/catalog_system/pub/products/crossselling/whoboughtalsobought", productID)
}

func (e Endpoints) OrderForm(orderFormID string) string {
	return e.join("api/checkout/pub/orderForm", orderFormID)
}

func (e Endpoints) NewOrderForm() string {
	return e.join("api/checkout/pub/orderForm")
}

func (e Endpoints) OrderFormItems(orderFormID string) string {
	return e.join("api/checkout/pub/orderForm", orderFormID, "items")
}

// join appends a fixed prefix and path-escaped segments to the base URL.
func (e Endpoints) join(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(e.baseURL)
	b.WriteByte('/')
	b.WriteString(strings.Trim(prefix, "/"))
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}
