package handlers

import (
	"net/http"

	"kirana-admin-backend/dtos"
	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PriceListHandler struct {
	DB *gorm.DB
}

func priceListFilterFromQuery(c *gin.Context) dtos.PriceListFilter {
	return dtos.PriceListFilter{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Status:       c.Query("status"),
		Availability: c.Query("availability"),
	}
}

func (h *PriceListHandler) fetchFiltered(c *gin.Context) ([]models.ProductList, bool) {
	var items []models.ProductList
	if err := h.DB.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch price list"})
		return nil, false
	}
	return utils.FilterPriceList(items, priceListFilterFromQuery(c)), true
}

func (h *PriceListHandler) storeName() string {
	var settings models.StoreSettings
	if err := h.DB.Where("id = ?", models.StoreSettingsID).First(&settings).Error; err != nil || settings.StoreName == "" {
		return "General Store"
	}
	return settings.StoreName
}

func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	items, ok := h.fetchFiltered(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *PriceListHandler) ExportPDF(c *gin.Context) {
	items, ok := h.fetchFiltered(c)
	if !ok {
		return
	}

	storeName := h.storeName()
	groups := utils.GroupByCategory(items)

	pdf, err := utils.RenderPriceListPDF(storeName, groups)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	filename := utils.CatalogFilename(storeName, "pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *PriceListHandler) ExportCSV(c *gin.Context) {
	items, ok := h.fetchFiltered(c)
	if !ok {
		return
	}

	csvData, err := utils.BuildPriceListCSV(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate CSV"})
		return
	}

	filename := utils.CatalogFilename(h.storeName(), "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvData))
}
