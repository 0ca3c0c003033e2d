package services

import (
	"errors"
	"fmt"

	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/utils"

	"github.com/google/uuid"
)

// ErrMissingFields is returned by CreateProduct when a required field is
// absent or zero-valued.
var ErrMissingFields = errors.New("missing required fields")

const DefaultProductLimit = 16

// ListProductsParams carries the raw listing query. MinPrice and MaxPrice stay
// strings so that non-numeric input can be ignored instead of failing.
type ListProductsParams struct {
	Page     int
	Limit    int
	Sort     string
	Category string
	Brand    string
	MinPrice string
	MaxPrice string
	Search   string
}

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService(productRepo *repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProducts runs the query pipeline over a snapshot of the collection:
// category, brand and price filters, then search, then sort, then pagination.
// totalProducts counts the filtered set before slicing.
func (s *ProductService) ListProducts(params ListProductsParams) *models.ProductListResponse {
	page := params.Page
	limit := params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultProductLimit
	}

	filtered := s.productRepo.GetAll()

	if params.Category != "" {
		filtered = utils.Filter(filtered, func(p models.Product) bool {
			return utils.MatchesField(p.Category, params.Category)
		})
	}
	if params.Brand != "" {
		filtered = utils.Filter(filtered, func(p models.Product) bool {
			return utils.MatchesField(p.Brand, params.Brand)
		})
	}
	if min, ok := utils.ParseIntFilter(params.MinPrice); ok {
		filtered = utils.Filter(filtered, func(p models.Product) bool {
			return p.Price >= min
		})
	}
	if max, ok := utils.ParseIntFilter(params.MaxPrice); ok {
		filtered = utils.Filter(filtered, func(p models.Product) bool {
			return p.Price <= max
		})
	}
	if params.Search != "" {
		filtered = utils.Filter(filtered, func(p models.Product) bool {
			return utils.ContainsFold(p.Name, params.Search) || utils.ContainsFold(p.Description, params.Search)
		})
	}

	switch params.Sort {
	case "name-asc":
		col := utils.NameCollator()
		utils.SortStable(filtered, func(a, b models.Product) bool {
			return col.CompareString(a.Name, b.Name) < 0
		})
	case "name-desc":
		col := utils.NameCollator()
		utils.SortStable(filtered, func(a, b models.Product) bool {
			return col.CompareString(a.Name, b.Name) > 0
		})
	case "price-asc":
		utils.SortStable(filtered, func(a, b models.Product) bool {
			return a.Price < b.Price
		})
	case "price-desc":
		utils.SortStable(filtered, func(a, b models.Product) bool {
			return a.Price > b.Price
		})
	default:
		// "default" and unknown tokens keep the collection order.
	}

	result := utils.Paginate(filtered, page, limit)

	return &models.ProductListResponse{
		Products:      result.Items,
		TotalProducts: result.TotalItems,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
		HasNextPage:   result.HasNextPage,
		HasPrevPage:   result.HasPrevPage,
	}
}

func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct validates presence of the required fields, fills in the
// generated id, display sku and default values, and appends the record.
// A price of zero counts as missing.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Description == "" || req.Price == 0 || req.Category == "" || req.Brand == "" {
		return nil, ErrMissingFields
	}

	image := req.Image
	if image == "" {
		image = "/images/default.jpg"
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	product := models.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: nil,
		Discount:      0,
		Category:      req.Category,
		Brand:         req.Brand,
		Image:         image,
		Rating:        0,
		Reviews:       0,
		Badge:         nil,
		Sku:           fmt.Sprintf("SS%03d", s.productRepo.Count()+1),
		Tags:          tags,
		InStock:       true,
	}

	s.productRepo.Insert(product)
	return &product, nil
}

// UpdateProduct applies a partial merge: fields present in the request
// overwrite the stored values, absent fields are left alone, and the id never
// changes. Present-but-zero values are applied, so price can be set to 0.
func (s *ProductService) UpdateProduct(id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}

	if err := s.productRepo.Update(*product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

func (s *ProductService) GetAllCategories() []string {
	return s.productRepo.Categories()
}

func (s *ProductService) GetAllBrands() []string {
	return s.productRepo.Brands()
}
