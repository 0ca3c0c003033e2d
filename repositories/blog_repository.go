package repositories

import "furniture-shop/models"

// BlogRepository is read-only; posts are seeded at startup and never mutated.
type BlogRepository struct {
	store *models.Store
}

func NewBlogRepository(store *models.Store) *BlogRepository {
	return &BlogRepository{store: store}
}

func (r *BlogRepository) GetAll() []models.BlogPost {
	r.store.RLock()
	defer r.store.RUnlock()

	posts := make([]models.BlogPost, len(r.store.BlogPosts))
	copy(posts, r.store.BlogPosts)
	return posts
}

// Categories returns the distinct post categories in first-occurrence order.
func (r *BlogRepository) Categories() []string {
	r.store.RLock()
	defer r.store.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.store.BlogPosts {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
