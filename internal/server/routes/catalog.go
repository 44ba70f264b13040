package routes

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/vtexgate/internal/aggregate"
	"github.com/fr0stylo/vtexgate/internal/app/ports"
	appservices "github.com/fr0stylo/vtexgate/internal/app/services"
)

const (
	msgCollectionIDRequired = "Collection ID is required"
	msgSearchQueryRequired  = "Search query is required"
	msgSKUIDRequired        = "SKU ID is required"
	msgProductIDRequired    = "Product ID is required"
)

// CatalogRoutes serves catalog reads.
type CatalogRoutes struct {
	catalog *appservices.CatalogService
	log     *slog.Logger
}

// NewCatalogRoutes constructs catalog routes.
func NewCatalogRoutes(commerce ports.Commerce, aggregator *aggregate.Aggregator, log *slog.Logger) *CatalogRoutes {
	return &CatalogRoutes{
		catalog: appservices.NewCatalogService(commerce, aggregator),
		log:     log,
	}
}

// RegisterRoutes registers catalog routes.
func (r *CatalogRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/collectionProduct", r.handleCollectionProducts)
	s.GET("/collection", r.handleCollections)
	s.GET("/collectionProductDetails", r.handleCollectionProductDetails)
	s.GET("/searchProducts", r.handleSearchProducts)
	s.GET("/sku/:skuId", r.handleSKU)
	s.GET("/pricing/:skuId", r.handlePricing)
	s.GET("/recommendations/:skuId", r.handleRecommendations)
	s.GET("/product/:productId", r.handleProduct)
}

func (r *CatalogRoutes) handleCollectionProducts(c echo.Context) error {
	collectionID := queryParam(c, "collectionId")
	if collectionID == "" {
		return c.String(http.StatusBadRequest, msgCollectionIDRequired)
	}
	products, err := r.catalog.CollectionProducts(c.Request().Context(), collectionID)
	if err != nil {
		return failure{log: r.log, message: "Error fetching products from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (r *CatalogRoutes) handleCollections(c echo.Context) error {
	collections, err := r.catalog.Collections(c.Request().Context())
	if err != nil {
		return failure{log: r.log, message: "Error fetching collections from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, collections)
}

func (r *CatalogRoutes) handleCollectionProductDetails(c echo.Context) error {
	collectionID := queryParam(c, "collectionId")
	if collectionID == "" {
		return c.String(http.StatusBadRequest, msgCollectionIDRequired)
	}
	details, err := r.catalog.CollectionProductDetails(c.Request().Context(), collectionID)
	if err != nil {
		return failure{
			log:      r.log,
			message:  "Error fetching collection product details from VTEX API",
			notFound: "No products found for the given collection",
		}.respond(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (r *CatalogRoutes) handleSearchProducts(c echo.Context) error {
	query := queryParam(c, "q")
	if query == "" {
		return c.String(http.StatusBadRequest, msgSearchQueryRequired)
	}
	products, err := r.catalog.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return failure{log: r.log, message: "Error fetching search results from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (r *CatalogRoutes) handleSKU(c echo.Context) error {
	skuID := pathParam(c, "skuId")
	if skuID == "" {
		return c.String(http.StatusBadRequest, msgSKUIDRequired)
	}
	sku, err := r.catalog.SKU(c.Request().Context(), skuID)
	if err != nil {
		return failure{log: r.log, message: "Error fetching SKU details from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, sku)
}

func (r *CatalogRoutes) handlePricing(c echo.Context) error {
	skuID := pathParam(c, "skuId")
	if skuID == "" {
		return c.String(http.StatusBadRequest, msgSKUIDRequired)
	}
	price, err := r.catalog.Price(c.Request().Context(), skuID)
	if err != nil {
		return failure{log: r.log, message: "Error fetching pricing details from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, price)
}

func (r *CatalogRoutes) handleRecommendations(c echo.Context) error {
	skuID := pathParam(c, "skuId")
	if skuID == "" {
		return c.String(http.StatusBadRequest, msgSKUIDRequired)
	}
	recommendations, err := r.catalog.Recommendations(c.Request().Context(), skuID)
	if err != nil {
		return failure{
			log:      r.log,
			message:  "Error fetching recommendations from VTEX API",
			notFound: "Product ID not found for the given SKU",
		}.respond(c, err)
	}
	return c.JSON(http.StatusOK, recommendations)
}

func (r *CatalogRoutes) handleProduct(c echo.Context) error {
	productID := pathParam(c, "productId")
	if productID == "" {
		return c.String(http.StatusBadRequest, msgProductIDRequired)
	}
	product, err := r.catalog.Product(c.Request().Context(), productID)
	if err != nil {
		return failure{
			log:      r.log,
			message:  "Error fetching product details from VTEX API",
			notFound: "No SKUs found for the given product",
		}.respond(c, err)
	}
	return c.JSON(http.StatusOK, product)
}
