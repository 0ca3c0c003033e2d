package services

import (
	"testing"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/stretchr/testify/assert"
)

func newBlogService() *BlogService {
	return NewBlogService(repositories.NewBlogRepository(models.NewStore()))
}

func postIDs(posts []models.BlogPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestListPosts_Defaults(t *testing.T) {
	svc := newBlogService()

	resp := svc.ListPosts(ListPostsParams{})

	assert.Equal(t, 8, resp.TotalPosts)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, postIDs(resp.Posts))
}

func TestListPosts_SecondPage(t *testing.T) {
	svc := newBlogService()

	resp := svc.ListPosts(ListPostsParams{Page: 2})

	assert.Equal(t, []string{"7", "8"}, postIDs(resp.Posts))
	assert.Equal(t, 2, resp.CurrentPage)
}

func TestListPosts_CategoryFilter(t *testing.T) {
	svc := newBlogService()

	resp := svc.ListPosts(ListPostsParams{Category: "design"})

	assert.Equal(t, []string{"1", "4", "7"}, postIDs(resp.Posts))
	assert.Equal(t, 3, resp.TotalPosts)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListPosts_SearchTitleAndExcerpt(t *testing.T) {
	svc := newBlogService()

	// Title hit.
	resp := svc.ListPosts(ListPostsParams{Search: "milan"})
	assert.Equal(t, []string{"4"}, postIDs(resp.Posts))

	// Excerpt hit.
	resp = svc.ListPosts(ListPostsParams{Search: "eco-friendly"})
	assert.Equal(t, []string{"6"}, postIDs(resp.Posts))

	resp = svc.ListPosts(ListPostsParams{Search: "no such thing"})
	assert.Empty(t, resp.Posts)
	assert.Equal(t, 0, resp.TotalPosts)
}

func TestListPosts_CategoryWithSearch(t *testing.T) {
	svc := newBlogService()

	resp := svc.ListPosts(ListPostsParams{Category: "Interior", Search: "office"})

	assert.Equal(t, []string{"5"}, postIDs(resp.Posts))
}

func TestListPosts_InvalidPageAndLimitAreClamped(t *testing.T) {
	svc := newBlogService()

	resp := svc.ListPosts(ListPostsParams{Page: 0, Limit: -1})

	assert.Equal(t, 1, resp.CurrentPage)
	assert.Len(t, resp.Posts, 6)
}

func TestGetBlogCategories_FirstOccurrenceOrder(t *testing.T) {
	svc := newBlogService()

	assert.Equal(t, []string{"Design", "Interior", "Handmade", "Wood", "Crafts"}, svc.GetBlogCategories())
}
