package database

import (
	"fmt"
	"log"
	"os"

	"kirana-admin-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=kirana_admin port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Category{},
		&models.Product{},
		&models.ProductList{},
		&models.AppSettings{},
		&models.StoreSettings{},
		&models.PasswordResetToken{},
		&models.RefreshToken{},
	)
}

// CreateDefaultSuperAdmin bootstraps an identity plus a super_admin record
// from ADMIN_EMAIL/ADMIN_PASSWORD. A no-op when the email already exists, so
// restarts are safe.
func CreateDefaultSuperAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		// Nothing to seed; the first-run setup endpoint covers this case.
		return nil
	}

	var existingUser models.User
	if err := db.Where("email = ?", adminEmail).First(&existingUser).Error; err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Name:     "Store Admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	admin := models.AdminUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      models.RoleSuperAdmin,
		IsActive:  true,
		CreatedBy: models.CreatedBySystem,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default super admin created: %s", adminEmail)
	return nil
}

// EnsureAppSettings creates the settings singleton on first boot so the login
// page always has a showSignUp flag to read.
func EnsureAppSettings(db *gorm.DB) error {
	var settings models.AppSettings
	err := db.Where("id = ?", models.AppSettingsID).First(&settings).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	settings = models.AppSettings{
		ID:         models.AppSettingsID,
		ShowSignUp: true,
		UpdatedBy:  models.CreatedBySystem,
	}
	return db.Create(&settings).Error
}
