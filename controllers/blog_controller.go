package controllers

import (
	"strconv"

	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	blogService *services.BlogService
}

func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// @Summary List blog posts
// @Description Get a filtered, paginated page of blog posts
// @Tags Blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(6)
// @Param category query string false "Filter by category, 'all' disables"
// @Param search query string false "Search in title and excerpt"
// @Success 200 {object} models.BlogListResponse
// @Router /blog [get]
func (ctrl *BlogController) GetAllPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	response := ctrl.blogService.ListPosts(services.ListPostsParams{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})

	c.JSON(200, response)
}

// @Summary Get blog categories
// @Description Get the distinct blog post categories in first-occurrence order
// @Tags Blog
// @Produce json
// @Success 200 {array} string
// @Router /blog/categories [get]
func (ctrl *BlogController) GetBlogCategories(c *gin.Context) {
	c.JSON(200, ctrl.blogService.GetBlogCategories())
}
