package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product references its category and subcategory by NAME, not id. Renaming
// or deleting a category does not propagate to existing products; that
// matches the store's historical data and is deliberate.
type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	MRP         float64    `gorm:"column:mrp;not null" json:"mrp"`
	Category    string     `gorm:"not null;index" json:"category"`
	SubCategory string     `json:"subCategory,omitempty"`
	Stock       int        `gorm:"default:0" json:"stock"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	IsAvailable bool       `gorm:"default:true" json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ListRecord derives the reporting mirror row for this product. The mirror
// shares the product's id and carries only the fields the price list needs.
func (p *Product) ListRecord() ProductList {
	created := p.CreatedAt
	var createdAt *time.Time
	if !created.IsZero() {
		createdAt = &created
	}
	return ProductList{
		ID:          p.ID,
		Name:        p.Name,
		MRP:         p.MRP,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		IsActive:    p.IsActive,
		IsAvailable: p.IsAvailable,
		CreatedAt:   createdAt,
	}
}
