package models

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       int      `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// UpdateProductRequest is a partial merge payload. Every field is optional:
// nil means "leave the stored value unchanged", a present value overwrites it,
// including zero and empty-string values. Tags distinguishes absent (nil) from
// an explicit empty list. The record id is never part of the payload.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *int     `json:"price"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Image       *string  `json:"image"`
	Tags        []string `json:"tags"`
}

type ProductListResponse struct {
	Products      []Product `json:"products"`
	TotalProducts int       `json:"totalProducts"`
	TotalPages    int       `json:"totalPages"`
	CurrentPage   int       `json:"currentPage"`
	HasNextPage   bool      `json:"hasNextPage"`
	HasPrevPage   bool      `json:"hasPrevPage"`
}

// BlogListResponse deliberately carries no hasNextPage/hasPrevPage; the two
// listing endpoints have different documented envelopes.
type BlogListResponse struct {
	Posts       []BlogPost `json:"posts"`
	TotalPosts  int        `json:"totalPosts"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
