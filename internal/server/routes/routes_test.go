package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/vtexgate/internal/aggregate"
	"github.com/fr0stylo/vtexgate/internal/app/ports"
	portmocks "github.com/fr0stylo/vtexgate/internal/app/ports/mocks"
	"github.com/fr0stylo/vtexgate/internal/vtex"
)

var errUpstream = &vtex.UpstreamError{Method: http.MethodGet, URL: "https://vtex.example.com", StatusCode: http.StatusBadGateway}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, commerce ports.Commerce) *echo.Echo {
	t.Helper()
	log := discardLogger()
	aggregator := aggregate.New(aggregate.WithLogger(log))
	e := echo.New()
	HealthRoutes{}.RegisterRoutes(e)
	NewCatalogRoutes(commerce, aggregator, log).RegisterRoutes(e)
	NewCartRoutes(commerce, aggregator, log).RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var out any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, portmocks.NewMockCommerce(t))

	rec := serve(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "VTEX API Server is running!" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestPassthroughRoutes(t *testing.T) {
	cases := []struct {
		name   string
		target string
		expect func(m *portmocks.MockCommerce, body any)
		body   any
	}{
		{
			name:   "collection products",
			target: "/collectionProduct?collectionId=139",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().CollectionProducts(mock.Anything, "139").Return(body, nil)
			},
			body: map[string]any{"Data": []any{}},
		},
		{
			name:   "collections",
			target: "/collection",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().CollectionSearch(mock.Anything).Return(body, nil)
			},
			body: map[string]any{"items": []any{"a"}},
		},
		{
			name:   "sku",
			target: "/sku/42",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().SKU(mock.Anything, "42").Return(body, nil)
			},
			body: map[string]any{"Id": float64(42)},
		},
		{
			name:   "pricing",
			target: "/pricing/42",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().Price(mock.Anything, "42").Return(body, nil)
			},
			body: map[string]any{"basePrice": 10.5},
		},
		{
			name:   "new cart",
			target: "/cart/",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().NewOrderForm(mock.Anything).Return(body, nil)
			},
			body: map[string]any{"orderFormId": "new"},
		},
		{
			name:   "new cart without trailing slash",
			target: "/cart",
			expect: func(m *portmocks.MockCommerce, body any) {
				m.EXPECT().NewOrderForm(mock.Anything).Return(body, nil)
			},
			body: map[string]any{"orderFormId": "new"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			commerce := portmocks.NewMockCommerce(t)
			tc.expect(commerce, tc.body)
			e := newTestServer(t, commerce)

			rec := serve(e, http.MethodGet, tc.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
			}
			got := decodeBody(t, rec)
			want, _ := json.Marshal(tc.body)
			gotRaw, _ := json.Marshal(got)
			if string(gotRaw) != string(want) {
				t.Fatalf("expected body %s, got %s", want, gotRaw)
			}
		})
	}
}

func TestPassthroughUpstreamFailureIsGeneric500(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().SKU(mock.Anything, "42").Return(nil, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/sku/42", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != "Error fetching SKU details from VTEX API" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestMissingQueryParameters(t *testing.T) {
	e := newTestServer(t, portmocks.NewMockCommerce(t))

	cases := []struct {
		target string
		want   string
	}{
		{target: "/collectionProduct", want: msgCollectionIDRequired},
		{target: "/collectionProduct?collectionId=%20%20", want: msgCollectionIDRequired},
		{target: "/collectionProductDetails", want: msgCollectionIDRequired},
		{target: "/searchProducts", want: msgSearchQueryRequired},
		{target: "/searchProducts?q=", want: msgSearchQueryRequired},
	}
	for _, tc := range cases {
		rec := serve(e, http.MethodGet, tc.target, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.target, rec.Code)
		}
		if rec.Body.String() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.target, tc.want, rec.Body.String())
		}
	}
}

func TestMissingPathParameters(t *testing.T) {
	log := discardLogger()
	commerce := portmocks.NewMockCommerce(t)
	catalog := NewCatalogRoutes(commerce, aggregate.New(), log)
	cart := NewCartRoutes(commerce, aggregate.New(), log)
	e := echo.New()

	cases := []struct {
		name    string
		method  string
		param   string
		handler echo.HandlerFunc
		want    string
	}{
		{name: "sku", method: http.MethodGet, param: "skuId", handler: catalog.handleSKU, want: msgSKUIDRequired},
		{name: "pricing", method: http.MethodGet, param: "skuId", handler: catalog.handlePricing, want: msgSKUIDRequired},
		{name: "recommendations", method: http.MethodGet, param: "skuId", handler: catalog.handleRecommendations, want: msgSKUIDRequired},
		{name: "product", method: http.MethodGet, param: "productId", handler: catalog.handleProduct, want: msgProductIDRequired},
		{name: "cart details", method: http.MethodGet, param: "orderFormId", handler: cart.handleCartWithProductDetails, want: msgOrderFormIDRequired},
		{name: "add to cart", method: http.MethodPost, param: "orderFormId", handler: cart.handleAddToCart, want: msgOrderFormIDRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames(tc.param)
			c.SetParamValues(" ")

			if err := tc.handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if rec.Body.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, rec.Body.String())
			}
		})
	}
}

func TestSearchProductsAttachesVariations(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().SearchProducts(mock.Anything, "shirt").Return([]any{
		map[string]any{"productId": "10", "productName": "Shirt"},
		map[string]any{"productId": "11", "productName": "Polo"},
	}, nil)
	commerce.EXPECT().ProductVariations(mock.Anything, "10").Return(map[string]any{"skus": []any{map[string]any{"sku": float64(100)}}}, nil)
	commerce.EXPECT().ProductVariations(mock.Anything, "11").Return(nil, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/searchProducts?q=shirt", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
	}
	products := decodeBody(t, rec).([]any)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	first := products[0].(map[string]any)
	if first["productName"] != "Shirt" {
		t.Fatalf("expected order preserved, got %#v", first)
	}
	if _, ok := first["skus"].(map[string]any); !ok {
		t.Fatalf("expected variations under skus, got %#v", first["skus"])
	}
	second := products[1].(map[string]any)
	if skus, ok := second["skus"].([]any); !ok || len(skus) != 0 {
		t.Fatalf("expected empty skus for failed variations, got %#v", second["skus"])
	}
}

func TestCartWithProductDetailsToleratesItemFailure(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().OrderForm(mock.Anything, "abc123").Return(map[string]any{
		"orderFormId": "abc123",
		"items":       []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}},
	}, nil)
	commerce.EXPECT().SKU(mock.Anything, "1").Return(map[string]any{"Id": float64(1)}, nil)
	commerce.EXPECT().SKU(mock.Anything, "2").Return(nil, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/cart-with-product-details/abc123", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
	}
	cart := decodeBody(t, rec).(map[string]any)
	if cart["orderFormId"] != "abc123" {
		t.Fatalf("expected order form fields, got %#v", cart)
	}
	details := cart["productDetails"].([]any)
	if len(details) != 2 {
		t.Fatalf("expected 2 product details, got %d", len(details))
	}
	first := details[0].(map[string]any)
	if first["skuDetails"] == nil {
		t.Fatalf("expected skuDetails for item 1, got %#v", first)
	}
	second := details[1].(map[string]any)
	if v, ok := second["skuDetails"]; !ok || v != nil {
		t.Fatalf("expected null skuDetails for item 2, got %#v", second)
	}
	if second["error"] != "Failed to fetch SKU details" {
		t.Fatalf("expected error message on item 2, got %#v", second["error"])
	}
}

func TestCartWithProductDetailsOrderFormFailure(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().OrderForm(mock.Anything, "abc123").Return(nil, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/cart-with-product-details/abc123", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCollectionProductDetailsEmptyCollection(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().CollectionProducts(mock.Anything, "55").Return(map[string]any{"Data": []any{}}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/collectionProductDetails?collectionId=55", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "No products found for the given collection" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	commerce.AssertNotCalled(t, "SKU", mock.Anything, mock.Anything)
}

func TestCollectionProductDetailsAttachesSKUs(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().CollectionProducts(mock.Anything, "139").Return(map[string]any{
		"Data": []any{map[string]any{"ProductId": "7", "SkuId": "70"}},
	}, nil)
	commerce.EXPECT().SKU(mock.Anything, "70").Return(map[string]any{"Id": float64(70)}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/collectionProductDetails?collectionId=139", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec).(map[string]any)
	if body["CollectionId"] != "139" {
		t.Fatalf("expected CollectionId 139, got %#v", body["CollectionId"])
	}
	products := body["Products"].([]any)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].(map[string]any)["SkuDetails"] == nil {
		t.Fatalf("expected SkuDetails, got %#v", products[0])
	}
}

func TestRecommendationsWithoutProduct(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().SKU(mock.Anything, "9").Return(map[string]any{"Id": float64(9)}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/recommendations/9", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Product ID not found for the given SKU" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	commerce.AssertNotCalled(t, "WhoBoughtAlsoBought", mock.Anything, mock.Anything)
}

func TestRecommendationsFollowsProduct(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().SKU(mock.Anything, "9").Return(map[string]any{"Id": float64(9), "ProductId": float64(3)}, nil)
	commerce.EXPECT().WhoBoughtAlsoBought(mock.Anything, "3").Return([]any{map[string]any{"productId": "4"}}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/recommendations/9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec).([]any); len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %#v", got)
	}
}

func TestProductWithoutSKUs(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().ProductVariations(mock.Anything, "5").Return(map[string]any{"productId": float64(5), "skus": []any{}}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/product/5", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "No SKUs found for the given product" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestProductAttachesAdditionalDetails(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().ProductVariations(mock.Anything, "5").Return(map[string]any{
		"productId": float64(5),
		"skus":      []any{map[string]any{"sku": float64(50)}, map[string]any{"sku": float64(51)}},
	}, nil)
	commerce.EXPECT().SKU(mock.Anything, "50").Return(map[string]any{"Id": float64(50)}, nil)
	commerce.EXPECT().SKU(mock.Anything, "51").Return(nil, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodGet, "/product/5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%q", rec.Code, rec.Body.String())
	}
	skus := decodeBody(t, rec).(map[string]any)["skus"].([]any)
	if skus[0].(map[string]any)["additionalDetails"] == nil {
		t.Fatalf("expected additionalDetails on first SKU, got %#v", skus[0])
	}
	if v, ok := skus[1].(map[string]any)["additionalDetails"]; !ok || v != nil {
		t.Fatalf("expected null additionalDetails on failed SKU, got %#v", skus[1])
	}
}

func TestAddToCartRequiresOrderItems(t *testing.T) {
	e := newTestServer(t, portmocks.NewMockCommerce(t))

	for _, body := range []string{`{}`, `{"orderItems":null}`} {
		rec := serve(e, http.MethodPost, "/add-to-cart/xyz", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
		got := decodeBody(t, rec).(map[string]any)
		if got["error"] != "Item data is required" {
			t.Fatalf("%s: unexpected body %#v", body, got)
		}
	}
}

func TestAddToCartForwardsUpstreamResponse(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().AddOrderItems(mock.Anything, "xyz", mock.MatchedBy(func(items any) bool {
		list, ok := items.([]any)
		return ok && len(list) == 1
	})).Return(ports.ForwardedResponse{
		StatusCode: http.StatusCreated,
		Body:       map[string]any{"orderFormId": "xyz"},
	}, nil)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodPost, "/add-to-cart/xyz", `{"orderItems":[{"id":"1","quantity":1,"seller":"1"}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%q", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec).(map[string]any); got["orderFormId"] != "xyz" {
		t.Fatalf("unexpected body %#v", got)
	}
}

func TestAddToCartUpstreamFailure(t *testing.T) {
	commerce := portmocks.NewMockCommerce(t)
	commerce.EXPECT().AddOrderItems(mock.Anything, "xyz", mock.Anything).Return(ports.ForwardedResponse{}, errUpstream)
	e := newTestServer(t, commerce)

	rec := serve(e, http.MethodPost, "/add-to-cart/xyz", `{"orderItems":[]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != "Error adding items to cart in VTEX API" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
