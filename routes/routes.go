package routes

import (
	"furniture-shop/controllers"
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires the store through repositories and services into the
// controllers and registers every route.
func SetupRoutes(router *gin.Engine, store *models.Store) {
	productRepo := repositories.NewProductRepository(store)
	blogRepo := repositories.NewBlogRepository(store)

	productCtrl := controllers.NewProductController(services.NewProductService(productRepo))
	blogCtrl := controllers.NewBlogController(services.NewBlogService(blogRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.POST("/products", productCtrl.CreateProduct)
	router.PUT("/products/:id", productCtrl.UpdateProduct)
	router.DELETE("/products/:id", productCtrl.DeleteProduct)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/brands", productCtrl.GetAllBrands)

	router.GET("/blog", blogCtrl.GetAllPosts)
	router.GET("/blog/categories", blogCtrl.GetBlogCategories)
}
