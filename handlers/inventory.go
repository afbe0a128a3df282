package handlers

import (
	"net/http"

	"kirana-admin-backend/dtos"
	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryHandler struct {
	DB *gorm.DB
}

// GetInventory returns the filtered product rows together with stats over the
// FULL catalog. The stats stay constant while the admin narrows the filters,
// so the page header keeps showing the whole store's position.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	filter := dtos.InventoryFilter{
		Search:     c.Query("search"),
		StockLevel: c.Query("stockLevel"),
		Category:   c.Query("category"),
	}

	filtered := utils.FilterInventory(products, filter)
	stats := utils.AggregateInventory(products)

	items := make([]gin.H, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"category":    p.Category,
			"subCategory": p.SubCategory,
			"mrp":         p.MRP,
			"stock":       p.Stock,
			"stockStatus": utils.ClassifyStock(p.Stock),
			"isActive":    p.IsActive,
			"isAvailable": p.IsAvailable,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"stats": stats,
	})
}
