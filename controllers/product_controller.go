package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"furniture-shop/config"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func productListCacheKey(rawQuery string) string {
	return "products_list_" + rawQuery
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary List products
// @Description Get a filtered, sorted, paginated page of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(16)
// @Param sort query string false "Sort order" Enums(default, name-asc, name-desc, price-asc, price-desc)
// @Param category query string false "Filter by category, 'all' disables"
// @Param brand query string false "Filter by brand, 'all' disables"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param search query string false "Search in name and description"
// @Success 200 {object} models.ProductListResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "16"))

	params := services.ListProductsParams{
		Page:     page,
		Limit:    limit,
		Sort:     c.DefaultQuery("sort", "default"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Search:   c.Query("search"),
	}

	cacheKey := productListCacheKey(c.Request.URL.RawQuery)
	ctx := context.Background()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response := ctrl.productService.ListProducts(params)

	if config.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.MessageResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.GetProductByID(c.Param("id"))
	if err != nil {
		c.JSON(404, models.MessageResponse{Message: "Product not found"})
		return
	}
	c.JSON(200, product)
}

// @Summary Create product
// @Description Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product to create"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.MessageResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Missing required fields"})
		return
	}

	product, err := ctrl.productService.CreateProduct(req)
	if err != nil {
		c.JSON(400, models.MessageResponse{Message: "Missing required fields"})
		return
	}

	invalidateProductCache()

	c.JSON(201, product)
}

// @Summary Update product
// @Description Partially update a product; absent fields are left unchanged
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.MessageResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	// An empty body is a valid no-op update.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(400, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Param("id"), req)
	if err != nil {
		c.JSON(404, models.MessageResponse{Message: "Product not found"})
		return
	}

	invalidateProductCache()

	c.JSON(200, product)
}

// @Summary Delete product
// @Description Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(404, models.MessageResponse{Message: "Product not found"})
		return
	}

	invalidateProductCache()

	c.JSON(200, models.MessageResponse{Message: "Product deleted successfully"})
}

// @Summary Get all categories
// @Description Get the distinct product categories in first-occurrence order
// @Tags Categories
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(200, ctrl.productService.GetAllCategories())
}

// @Summary Get all brands
// @Description Get the distinct product brands in first-occurrence order
// @Tags Categories
// @Produce json
// @Success 200 {array} string
// @Router /brands [get]
func (ctrl *ProductController) GetAllBrands(c *gin.Context) {
	c.JSON(200, ctrl.productService.GetAllBrands())
}
