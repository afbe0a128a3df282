package handlers

import (
	"net/http"

	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	var totalProducts, totalCategories, totalAdmins, activeProducts, lowStockProducts int64

	h.DB.Model(&models.Product{}).Count(&totalProducts)
	h.DB.Model(&models.Category{}).Count(&totalCategories)
	h.DB.Model(&models.AdminUser{}).Count(&totalAdmins)
	h.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&activeProducts)
	h.DB.Model(&models.Product{}).Where("stock > 0 AND stock <= ?", utils.LowStockThreshold).Count(&lowStockProducts)

	var recentProducts []models.Product
	if err := h.DB.Order("created_at DESC").Limit(5).Find(&recentProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts":    totalProducts,
		"totalCategories":  totalCategories,
		"totalAdmins":      totalAdmins,
		"activeProducts":   activeProducts,
		"lowStockProducts": lowStockProducts,
		"recentProducts":   recentProducts,
	})
}
