package repositories

import (
	"errors"

	"furniture-shop/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	store *models.Store
}

func NewProductRepository(store *models.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// GetAll returns a snapshot copy of the collection; callers may filter and
// sort it freely without affecting the store.
func (r *ProductRepository) GetAll() []models.Product {
	r.store.RLock()
	defer r.store.RUnlock()

	products := make([]models.Product, len(r.store.Products))
	copy(products, r.store.Products)
	return products
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for _, p := range r.store.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *ProductRepository) Count() int {
	r.store.RLock()
	defer r.store.RUnlock()
	return len(r.store.Products)
}

func (r *ProductRepository) Insert(product models.Product) {
	r.store.Lock()
	defer r.store.Unlock()
	r.store.Products = append(r.store.Products, product)
}

// Update replaces the stored record with the same id. The id itself is the
// lookup key and therefore never changes.
func (r *ProductRepository) Update(product models.Product) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Products {
		if r.store.Products[i].ID == product.ID {
			r.store.Products[i] = product
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes the record, shifting later entries so the remaining order is
// preserved by position.
func (r *ProductRepository) Delete(id string) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Products {
		if r.store.Products[i].ID == id {
			r.store.Products = append(r.store.Products[:i], r.store.Products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Categories returns the distinct category values in first-occurrence order,
// without case normalization.
func (r *ProductRepository) Categories() []string {
	r.store.RLock()
	defer r.store.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.store.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Brands mirrors Categories for the brand field.
func (r *ProductRepository) Brands() []string {
	r.store.RLock()
	defer r.store.RUnlock()

	seen := map[string]bool{}
	brands := []string{}
	for _, p := range r.store.Products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}
