package handlers

import (
	"net/http"

	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	DB *gorm.DB
}

// GetAppSettings is public: the login page needs showSignUp before anyone has
// a token.
func (h *SettingsHandler) GetAppSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := h.DB.Where("id = ?", models.AppSettingsID).First(&settings).Error; err != nil {
		// Missing row reads as the default; the row is created on first write.
		settings = models.AppSettings{ID: models.AppSettingsID, ShowSignUp: true}
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateAppSettings(c *gin.Context) {
	var req struct {
		ShowSignUp *bool `json:"showSignUp" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	updaterEmail, _ := c.Get("user_email")
	updatedBy, _ := updaterEmail.(string)

	var settings models.AppSettings
	if err := h.DB.Where("id = ?", models.AppSettingsID).First(&settings).Error; err != nil {
		settings = models.AppSettings{ID: models.AppSettingsID}
	}
	settings.ShowSignUp = *req.ShowSignUp
	settings.UpdatedBy = updatedBy

	if err := h.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update app settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) GetStoreSettings(c *gin.Context) {
	var settings models.StoreSettings
	if err := h.DB.Where("id = ?", models.StoreSettingsID).First(&settings).Error; err != nil {
		settings = models.StoreSettings{ID: models.StoreSettingsID}
	}
	c.JSON(http.StatusOK, settings)
}

// storeSettingsRequest mirrors StoreSettings with every field a pointer, so
// the handler can tell "not sent" from "set to zero" and apply only the
// fields present in the payload.
type storeSettingsRequest struct {
	StoreName        *string `json:"storeName"`
	StoreNameHindi   *string `json:"storeNameHindi"`
	Tagline          *string `json:"tagline"`
	TaglineHindi     *string `json:"taglineHindi"`
	Description      *string `json:"description"`
	DescriptionHindi *string `json:"descriptionHindi"`
	FreePickup       *bool   `json:"freePickup"`
	CashOnPickup     *bool   `json:"cashOnPickup"`
	OnlineOrdering   *bool   `json:"onlineOrdering"`

	PrimaryPhone    *string `json:"primaryPhone"`
	SecondaryPhone  *string `json:"secondaryPhone"`
	WhatsappNumber  *string `json:"whatsappNumber"`
	Email           *string `json:"email"`
	Website         *string `json:"website"`
	GSTNumber       *string `json:"gstNumber"`
	LicenseNumber   *string `json:"licenseNumber"`
	EstablishedYear *int    `json:"establishedYear"`

	Address      *string `json:"address"`
	AddressHindi *string `json:"addressHindi"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	Landmark     *string `json:"landmark"`

	MondayToSaturday *string `json:"mondayToSaturday"`
	Sunday           *string `json:"sunday"`
	HolidayHours     *string `json:"holidayHours"`

	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`

	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Keywords        *[]string `json:"keywords"`
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (h *SettingsHandler) UpdateStoreSettings(c *gin.Context) {
	var req storeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	var settings models.StoreSettings
	if err := h.DB.Where("id = ?", models.StoreSettingsID).First(&settings).Error; err != nil {
		settings = models.StoreSettings{ID: models.StoreSettingsID}
	}

	applyString(&settings.StoreName, req.StoreName)
	applyString(&settings.StoreNameHindi, req.StoreNameHindi)
	applyString(&settings.Tagline, req.Tagline)
	applyString(&settings.TaglineHindi, req.TaglineHindi)
	applyString(&settings.Description, req.Description)
	applyString(&settings.DescriptionHindi, req.DescriptionHindi)
	if req.FreePickup != nil {
		settings.FreePickup = *req.FreePickup
	}
	if req.CashOnPickup != nil {
		settings.CashOnPickup = *req.CashOnPickup
	}
	if req.OnlineOrdering != nil {
		settings.OnlineOrdering = *req.OnlineOrdering
	}

	applyString(&settings.PrimaryPhone, req.PrimaryPhone)
	applyString(&settings.SecondaryPhone, req.SecondaryPhone)
	applyString(&settings.WhatsappNumber, req.WhatsappNumber)
	applyString(&settings.Email, req.Email)
	applyString(&settings.Website, req.Website)
	applyString(&settings.GSTNumber, req.GSTNumber)
	applyString(&settings.LicenseNumber, req.LicenseNumber)
	if req.EstablishedYear != nil {
		settings.EstablishedYear = *req.EstablishedYear
	}

	applyString(&settings.Address, req.Address)
	applyString(&settings.AddressHindi, req.AddressHindi)
	applyString(&settings.City, req.City)
	applyString(&settings.State, req.State)
	applyString(&settings.Pincode, req.Pincode)
	applyString(&settings.Landmark, req.Landmark)

	applyString(&settings.MondayToSaturday, req.MondayToSaturday)
	applyString(&settings.Sunday, req.Sunday)
	applyString(&settings.HolidayHours, req.HolidayHours)

	applyString(&settings.Facebook, req.Facebook)
	applyString(&settings.Instagram, req.Instagram)
	applyString(&settings.Twitter, req.Twitter)

	applyString(&settings.MetaTitle, req.MetaTitle)
	applyString(&settings.MetaDescription, req.MetaDescription)
	if req.Keywords != nil {
		settings.Keywords = models.StringList(*req.Keywords)
	}

	updaterEmail, _ := c.Get("user_email")
	updatedBy, _ := updaterEmail.(string)
	settings.UpdatedBy = updatedBy

	if err := h.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
