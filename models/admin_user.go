package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles. super_admin is required for user management and app settings.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Sentinel CreatedBy values for admin records not created by another admin.
const (
	CreatedBySelfSetup = "self-setup"
	CreatedBySystem    = "system"
)

// AdminUser maps an identity to a console role. Its id is the identity's id,
// not an independent key. An identity without a row here still signs in and
// is treated as a plain admin; such synthesized records are never persisted.
type AdminUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"not null" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"default:admin" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`
}

func (AdminUser) TableName() string {
	return "admins"
}

// SynthesizedAdmin builds the transient record used when an authenticated
// identity has no (active) admin row. Never written to the database.
func SynthesizedAdmin(user *User) AdminUser {
	name := user.Name
	if name == "" {
		name = user.Email
	}
	return AdminUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      name,
		Role:      RoleAdmin,
		IsActive:  true,
		CreatedBy: CreatedBySystem,
	}
}
