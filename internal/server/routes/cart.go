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
	msgOrderFormIDRequired = "Order form ID is required"
	msgItemDataRequired    = "Item data is required"
)

// CartRoutes serves checkout order forms.
type CartRoutes struct {
	cart *appservices.CartService
	log  *slog.Logger
}

type addToCartRequest struct {
	OrderItems any `json:"orderItems"`
}

// NewCartRoutes constructs cart routes.
func NewCartRoutes(commerce ports.Commerce, aggregator *aggregate.Aggregator, log *slog.Logger) *CartRoutes {
	return &CartRoutes{
		cart: appservices.NewCartService(commerce, aggregator),
		log:  log,
	}
}

// RegisterRoutes registers cart routes.
func (r *CartRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/cart", r.handleNewCart)
	s.GET("/cart/", r.handleNewCart)
	s.GET("/cart-with-product-details/:orderFormId", r.handleCartWithProductDetails)
	s.POST("/add-to-cart/:orderFormId", r.handleAddToCart)
}

func (r *CartRoutes) handleNewCart(c echo.Context) error {
	orderForm, err := r.cart.NewCart(c.Request().Context())
	if err != nil {
		return failure{log: r.log, message: "Error creating order form in VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, orderForm)
}

func (r *CartRoutes) handleCartWithProductDetails(c echo.Context) error {
	orderFormID := pathParam(c, "orderFormId")
	if orderFormID == "" {
		return c.String(http.StatusBadRequest, msgOrderFormIDRequired)
	}
	cart, err := r.cart.CartWithProductDetails(c.Request().Context(), orderFormID)
	if err != nil {
		return failure{log: r.log, message: "Error fetching cart details from VTEX API"}.respond(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (r *CartRoutes) handleAddToCart(c echo.Context) error {
	orderFormID := pathParam(c, "orderFormId")
	if orderFormID == "" {
		return c.String(http.StatusBadRequest, msgOrderFormIDRequired)
	}
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgItemDataRequired})
	}
	if req.OrderItems == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgItemDataRequired})
	}

	resp, err := r.cart.AddToCart(c.Request().Context(), orderFormID, req.OrderItems)
	if err != nil {
		return failure{log: r.log, message: "Error adding items to cart in VTEX API"}.respond(c, err)
	}
	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	if resp.Body == nil {
		return c.NoContent(status)
	}
	return c.JSON(status, resp.Body)
}
