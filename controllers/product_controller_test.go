package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"furniture-shop/models"
	"furniture-shop/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, models.NewStore())
	return router
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestGetProducts_DefaultPage(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/products", nil)

	require.Equal(t, 200, w.Code)
	resp := decodeJSON[models.ProductListResponse](t, w)
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, 3, resp.TotalProducts)
	assert.Equal(t, 1, resp.CurrentPage)

	// Products carry the richer pagination envelope.
	raw := decodeJSON[map[string]json.RawMessage](t, w)
	assert.Contains(t, raw, "hasNextPage")
	assert.Contains(t, raw, "hasPrevPage")
}

func TestGetProducts_FilterSortPaginate(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/products?category=Dining&sort=price-asc", nil)

	require.Equal(t, 200, w.Code)
	resp := decodeJSON[models.ProductListResponse](t, w)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Syltherine", resp.Products[0].Name)
	assert.Equal(t, "Leviosa", resp.Products[1].Name)

	w = doRequest(router, http.MethodGet, "/products?search=sofa", nil)
	resp = decodeJSON[models.ProductListResponse](t, w)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Lolito", resp.Products[0].Name)

	w = doRequest(router, http.MethodGet, "/products?limit=2&page=2", nil)
	resp = decodeJSON[models.ProductListResponse](t, w)
	require.Len(t, resp.Products, 1)
	assert.True(t, resp.HasPrevPage)
	assert.False(t, resp.HasNextPage)
}

func TestGetProducts_MalformedParamsDegradeGracefully(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/products?page=abc&limit=xyz&minPrice=oops&maxPrice=!", nil)

	require.Equal(t, 200, w.Code)
	resp := decodeJSON[models.ProductListResponse](t, w)
	assert.Equal(t, 3, resp.TotalProducts)
	assert.Equal(t, 1, resp.CurrentPage)
}

func TestGetProductByID(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/products/1", nil)
	require.Equal(t, 200, w.Code)
	product := decodeJSON[models.Product](t, w)
	assert.Equal(t, "Syltherine", product.Name)
	require.NotNil(t, product.OriginalPrice)
	assert.Equal(t, 3500000, *product.OriginalPrice)

	w = doRequest(router, http.MethodGet, "/products/999", nil)
	require.Equal(t, 404, w.Code)
	msg := decodeJSON[models.MessageResponse](t, w)
	assert.Equal(t, "Product not found", msg.Message)
}

func TestCreateProduct_MissingFieldIsRejected(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(gin.H{
		"name":        "Respira",
		"description": "Outdoor bar table",
		"price":       500000,
		"category":    "Outdoor",
		// brand missing
	})
	w := doRequest(router, http.MethodPost, "/products", body)

	require.Equal(t, 400, w.Code)
	msg := decodeJSON[models.MessageResponse](t, w)
	assert.Equal(t, "Missing required fields", msg.Message)
}

func TestCreateProduct_ThenFetchByID(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(gin.H{
		"name":        "Respira",
		"description": "Outdoor bar table and stool",
		"price":       500000,
		"category":    "Outdoor",
		"brand":       "Furniro",
		"tags":        []string{"Table"},
	})
	w := doRequest(router, http.MethodPost, "/products", body)

	require.Equal(t, 201, w.Code)
	created := decodeJSON[models.Product](t, w)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.InStock)
	assert.Equal(t, "/images/default.jpg", created.Image)
	assert.Equal(t, "SS004", created.Sku)

	w = doRequest(router, http.MethodGet, "/products/"+created.ID, nil)
	require.Equal(t, 200, w.Code)
	fetched := decodeJSON[models.Product](t, w)
	assert.Equal(t, created, fetched)

	w = doRequest(router, http.MethodGet, "/products", nil)
	resp := decodeJSON[models.ProductListResponse](t, w)
	assert.Equal(t, 4, resp.TotalProducts)
	assert.Equal(t, "Respira", resp.Products[3].Name)
}

func TestUpdateProduct(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(gin.H{"price": 2750000})
	w := doRequest(router, http.MethodPut, "/products/1", body)

	require.Equal(t, 200, w.Code)
	updated := decodeJSON[models.Product](t, w)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, 2750000, updated.Price)
	assert.Equal(t, "Syltherine", updated.Name)

	w = doRequest(router, http.MethodPut, "/products/999", []byte(`{}`))
	require.Equal(t, 404, w.Code)
}

func TestUpdateProduct_EmptyBodyIsNoOp(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodPut, "/products/1", []byte(`{}`))
	require.Equal(t, 200, w.Code)
	updated := decodeJSON[models.Product](t, w)
	assert.Equal(t, "Syltherine", updated.Name)
	assert.Equal(t, 2500000, updated.Price)

	// No body at all behaves the same.
	w = doRequest(router, http.MethodPut, "/products/1", nil)
	require.Equal(t, 200, w.Code)
}

func TestDeleteProduct_SecondDeleteIs404(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodDelete, "/products/2", nil)
	require.Equal(t, 200, w.Code)
	msg := decodeJSON[models.MessageResponse](t, w)
	assert.Equal(t, "Product deleted successfully", msg.Message)

	w = doRequest(router, http.MethodGet, "/products/2", nil)
	assert.Equal(t, 404, w.Code)

	w = doRequest(router, http.MethodDelete, "/products/2", nil)
	assert.Equal(t, 404, w.Code)
}

func TestGetCategoriesAndBrands(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/categories", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Dining", "Living"}, decodeJSON[[]string](t, w))

	w = doRequest(router, http.MethodGet, "/brands", nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Furniro"}, decodeJSON[[]string](t, w))
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", decodeJSON[map[string]string](t, w)["status"])
}
