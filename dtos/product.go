package dtos

// ProductRequest is the payload for product create and update. IsActive and
// IsAvailable are pointers so an absent flag keeps its default (true) rather
// than being forced to false; older clients never sent isAvailable at all.
type ProductRequest struct {
	Name        string   `json:"name"`
	MRP         float64  `json:"mrp"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
	IsAvailable *bool    `json:"isAvailable"`
}

// CategoryRequest carries a full category document. Saving a category always
// writes the entire subcategory array back in one update.
type CategoryRequest struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl"`
	SubCategories []SubCategoryItem `json:"subCategories"`
}

type SubCategoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
