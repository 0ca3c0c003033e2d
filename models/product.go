package models

// Product is one catalog record. OriginalPrice and Badge are pointers so the
// JSON carries an explicit null when a product is not discounted, matching the
// public payload shape.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Badge         *string  `json:"badge"`
	Sku           string   `json:"sku"`
	Tags          []string `json:"tags"`
	InStock       bool     `json:"inStock"`
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// SeedProducts returns the catalog the store starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Syltherine",
			Description:   "Stylish cafe chair",
			Price:         2500000,
			OriginalPrice: intPtr(3500000),
			Discount:      30,
			Category:      "Dining",
			Brand:         "Furniro",
			Image:         "/images/inside-weather.jpg",
			Rating:        4.5,
			Reviews:       120,
			Badge:         strPtr("sale"),
			Sku:           "SS001",
			Tags:          []string{"Sofa", "Chair", "Home", "Shop"},
			InStock:       true,
		},
		{
			ID:            "2",
			Name:          "Leviosa",
			Description:   "Stylish cafe chair",
			Price:         2500000,
			OriginalPrice: nil,
			Discount:      0,
			Category:      "Dining",
			Brand:         "Furniro",
			Image:         "/images/phillip.jpg",
			Rating:        4.7,
			Reviews:       204,
			Badge:         nil,
			Sku:           "SS002",
			Tags:          []string{"Sofa", "Chair", "Home", "Shop"},
			InStock:       true,
		},
		{
			ID:            "3",
			Name:          "Lolito",
			Description:   "Luxury big sofa",
			Price:         7000000,
			OriginalPrice: intPtr(14000000),
			Discount:      50,
			Category:      "Living",
			Brand:         "Furniro",
			Image:         "/images/hutomo.jpg",
			Rating:        4.3,
			Reviews:       89,
			Badge:         strPtr("sale"),
			Sku:           "SS003",
			Tags:          []string{"Sofa", "Living", "Home", "Shop"},
			InStock:       true,
		},
	}
}
