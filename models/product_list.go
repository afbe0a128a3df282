package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductList is the denormalized reporting record behind the price-list and
// export screens. It shares its id with the source product and is written in
// the same transaction as every product mutation. CreatedAt is nullable
// because legacy rows were imported without one.
type ProductList struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	MRP         float64    `gorm:"column:mrp;not null" json:"mrp"`
	Category    string     `gorm:"not null;index" json:"category"`
	SubCategory string     `json:"subCategory,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	IsAvailable bool       `gorm:"default:true" json:"isAvailable"`
	CreatedAt   *time.Time `json:"createdAt"`
}
