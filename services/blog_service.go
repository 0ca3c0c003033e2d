package services

import (
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/utils"
)

const DefaultBlogLimit = 6

// ListPostsParams carries the blog listing query. Posts have no sort
// parameter; they always stay in collection order.
type ListPostsParams struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

type BlogService struct {
	blogRepo *repositories.BlogRepository
}

func NewBlogService(blogRepo *repositories.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// ListPosts runs the same pipeline as the product listing, with the post
// filter set: category, then search over title and excerpt, then pagination.
func (s *BlogService) ListPosts(params ListPostsParams) *models.BlogListResponse {
	page := params.Page
	limit := params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultBlogLimit
	}

	filtered := s.blogRepo.GetAll()

	if params.Category != "" {
		filtered = utils.Filter(filtered, func(p models.BlogPost) bool {
			return utils.MatchesField(p.Category, params.Category)
		})
	}
	if params.Search != "" {
		filtered = utils.Filter(filtered, func(p models.BlogPost) bool {
			return utils.ContainsFold(p.Title, params.Search) || utils.ContainsFold(p.Excerpt, params.Search)
		})
	}

	result := utils.Paginate(filtered, page, limit)

	return &models.BlogListResponse{
		Posts:       result.Items,
		TotalPosts:  result.TotalItems,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	}
}

func (s *BlogService) GetBlogCategories() []string {
	return s.blogRepo.Categories()
}
