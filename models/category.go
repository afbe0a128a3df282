package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a top-level taxonomy entry. Subcategories are embedded in the
// category row and saved as a whole array on every update (last write wins;
// there is no per-subcategory persistence).
type Category struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl"`
	SubCategories SubCategoryList `gorm:"type:text" json:"subCategories"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SubCategory lives inside its parent Category's SubCategories array.
type SubCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AddSubCategory appends a subcategory with a generated id. An empty name
// (after trimming) is a silent no-op, mirroring the admin UI guard.
func (c *Category) AddSubCategory(name, description string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	c.SubCategories = append(c.SubCategories, SubCategory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	return true
}

// EditSubCategory replaces the entry with the given id in place, keeping its
// id and position. Returns false on an empty trimmed name or unknown id.
func (c *Category) EditSubCategory(id, name, description string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			c.SubCategories[i].Name = name
			c.SubCategories[i].Description = strings.TrimSpace(description)
			return true
		}
	}
	return false
}

// RemoveSubCategory filters out the entry by id, preserving the order of the
// remaining entries.
func (c *Category) RemoveSubCategory(id string) bool {
	for i := range c.SubCategories {
		if c.SubCategories[i].ID == id {
			c.SubCategories = append(c.SubCategories[:i], c.SubCategories[i+1:]...)
			return true
		}
	}
	return false
}
