package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"kirana-admin-backend/dtos"
	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func validateProductRequest(req *dtos.ProductRequest) (string, bool) {
	if strings.TrimSpace(req.Name) == "" {
		return "Product name is required", false
	}
	if req.MRP <= 0 {
		return "MRP must be greater than zero", false
	}
	if strings.TrimSpace(req.Category) == "" {
		return "Category is required", false
	}
	if req.Stock < 0 {
		return "Stock cannot be negative", false
	}
	return "", true
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.DB.Model(&models.Product{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status == "active" {
		query = query.Where("is_active = ?", true)
	} else if status == "inactive" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dtos.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if msg, ok := validateProductRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product := models.Product{
		Name:        strings.TrimSpace(req.Name),
		MRP:         req.MRP,
		Category:    strings.TrimSpace(req.Category),
		SubCategory: strings.TrimSpace(req.SubCategory),
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Tags:        models.StringList(req.Tags),
		IsActive:    true,
		IsAvailable: true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	// Product and its price-list mirror commit together or not at all.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		record := product.ListRecord()
		return tx.Create(&record).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req dtos.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if msg, ok := validateProductRequest(&req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product.Name = strings.TrimSpace(req.Name)
	product.MRP = req.MRP
	product.Category = strings.TrimSpace(req.Category)
	product.SubCategory = strings.TrimSpace(req.SubCategory)
	product.Stock = req.Stock
	product.ImageURL = req.ImageURL
	product.Tags = models.StringList(req.Tags)
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err := h.saveWithMirror(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&product).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", product.ID).Delete(&models.ProductList{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) ToggleActive(c *gin.Context) {
	h.toggleFlag(c, func(p *models.Product) {
		p.IsActive = !p.IsActive
	})
}

func (h *ProductHandler) ToggleAvailable(c *gin.Context) {
	h.toggleFlag(c, func(p *models.Product) {
		p.IsAvailable = !p.IsAvailable
	})
}

func (h *ProductHandler) toggleFlag(c *gin.Context, flip func(*models.Product)) {
	id := c.Param("id")

	var product models.Product
	if err := h.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	flip(&product)

	if err := h.saveWithMirror(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// saveWithMirror persists the product and its price-list row in one
// transaction. A missing mirror row (legacy data) is recreated rather than
// treated as an error.
func (h *ProductHandler) saveWithMirror(product *models.Product) error {
	return h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		record := product.ListRecord()
		var existing models.ProductList
		if err := tx.Where("id = ?", product.ID).First(&existing).Error; err != nil {
			return tx.Create(&record).Error
		}
		return tx.Save(&record).Error
	})
}
