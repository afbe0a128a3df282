package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"

	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler implements admin-user management. Every route here sits behind
// the super-admin gate.
type UserHandler struct {
	DB *gorm.DB
}

func (h *UserHandler) ListAdmins(c *gin.Context) {
	var admins []models.AdminUser
	if err := h.DB.Order("created_at ASC").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin users"})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func generatePassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (h *UserHandler) CreateAdmin(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
		Role  string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	role := req.Role
	if role != models.RoleSuperAdmin {
		role = models.RoleAdmin
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	}

	password, err := generatePassword()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate password"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// createdBy holds the creator's id so the listing page can resolve the
	// creator's name with an id lookup.
	var createdBy string
	if callerID, exists := c.Get("user_id"); exists {
		if uid, ok := callerID.(uuid.UUID); ok {
			createdBy = uid.String()
		}
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
	}
	admin := models.AdminUser{
		ID:        user.ID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      role,
		IsActive:  true,
		CreatedBy: createdBy,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin user"})
		return
	}

	adminURL := os.Getenv("ADMIN_URL")
	if adminURL == "" {
		adminURL = "http://localhost:3000"
	}
	utils.SendAdminInvitationEmail(admin.Email, admin.Name, admin.Role, password, adminURL)

	c.JSON(http.StatusCreated, admin)
}

// ToggleStatus flips isActive. Acting on your own record is rejected before
// any write; a super admin cannot lock themselves out.
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")

	// Compare as uuids, not strings: the column match is case-insensitive,
	// so an uppercase-hex spelling of the caller's own id must not slip past.
	if callerID, exists := c.Get("user_id"); exists {
		if uid, ok := callerID.(uuid.UUID); ok {
			if target, err := uuid.Parse(id); err == nil && target == uid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot change your own status"})
				return
			}
		}
	}

	var admin models.AdminUser
	if err := h.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin user not found"})
		return
	}

	admin.IsActive = !admin.IsActive
	if err := h.DB.Save(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin user"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *UserHandler) DeleteAdmin(c *gin.Context) {
	id := c.Param("id")

	if callerID, exists := c.Get("user_id"); exists {
		if uid, ok := callerID.(uuid.UUID); ok {
			if target, err := uuid.Parse(id); err == nil && target == uid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
				return
			}
		}
	}

	var admin models.AdminUser
	if err := h.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin user not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&admin).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", admin.ID).Delete(&models.User{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin user deleted successfully"})
}
