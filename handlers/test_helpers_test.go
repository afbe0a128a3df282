package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"kirana-admin-backend/middleware"
	"kirana-admin-backend/models"
	"kirana-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	// Limit to 1 open connection to prevent SQLite concurrent access issues
	// with in-memory databases.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	// Create tables using raw SQLite-compatible SQL instead of AutoMigrate,
	// because the GORM model tags use PostgreSQL-specific defaults like gen_random_uuid().
	if err := createSQLiteTables(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB returns a clean database for each test by deleting all rows.
func freshDB() *gorm.DB {
	testDB.Exec("DELETE FROM product_lists")
	testDB.Exec("DELETE FROM products")
	testDB.Exec("DELETE FROM categories")
	testDB.Exec("DELETE FROM app_settings")
	testDB.Exec("DELETE FROM store_settings")
	testDB.Exec("DELETE FROM password_reset_tokens")
	testDB.Exec("DELETE FROM refresh_tokens")
	testDB.Exec("DELETE FROM admins")
	testDB.Exec("DELETE FROM users")
	return testDB
}

func createSQLiteTables(db *gorm.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"password" TEXT NOT NULL,
			"name" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON "users"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "admins" (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"name" TEXT,
			"role" TEXT DEFAULT 'admin',
			"is_active" INTEGER DEFAULT 1,
			"created_by" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME
		)`,

		`CREATE TABLE IF NOT EXISTS "categories" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"description" TEXT,
			"image_url" TEXT,
			"sub_categories" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_name ON "categories"("name")`,

		`CREATE TABLE IF NOT EXISTS "products" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"mrp" REAL NOT NULL,
			"category" TEXT NOT NULL,
			"sub_category" TEXT,
			"stock" INTEGER DEFAULT 0,
			"image_url" TEXT,
			"tags" TEXT,
			"is_active" INTEGER DEFAULT 1,
			"is_available" INTEGER DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON "products"("category")`,

		`CREATE TABLE IF NOT EXISTS "product_lists" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"mrp" REAL NOT NULL,
			"category" TEXT NOT NULL,
			"sub_category" TEXT,
			"is_active" INTEGER DEFAULT 1,
			"is_available" INTEGER DEFAULT 1,
			"created_at" DATETIME
		)`,

		`CREATE TABLE IF NOT EXISTS "app_settings" (
			"id" TEXT PRIMARY KEY,
			"show_sign_up" INTEGER DEFAULT 1,
			"updated_at" DATETIME,
			"updated_by" TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS "store_settings" (
			"id" TEXT PRIMARY KEY,
			"store_name" TEXT,
			"store_name_hindi" TEXT,
			"tagline" TEXT,
			"tagline_hindi" TEXT,
			"description" TEXT,
			"description_hindi" TEXT,
			"free_pickup" INTEGER DEFAULT 0,
			"cash_on_pickup" INTEGER DEFAULT 0,
			"online_ordering" INTEGER DEFAULT 0,
			"primary_phone" TEXT,
			"secondary_phone" TEXT,
			"whatsapp_number" TEXT,
			"email" TEXT,
			"website" TEXT,
			"gst_number" TEXT,
			"license_number" TEXT,
			"established_year" INTEGER DEFAULT 0,
			"address" TEXT,
			"address_hindi" TEXT,
			"city" TEXT,
			"state" TEXT,
			"pincode" TEXT,
			"landmark" TEXT,
			"monday_to_saturday" TEXT,
			"sunday" TEXT,
			"holiday_hours" TEXT,
			"facebook" TEXT,
			"instagram" TEXT,
			"twitter" TEXT,
			"meta_title" TEXT,
			"meta_description" TEXT,
			"keywords" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"updated_by" TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS "password_reset_tokens" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"token" TEXT NOT NULL UNIQUE,
			"expires_at" DATETIME NOT NULL,
			"used_at" DATETIME,
			"created_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_user_id ON "password_reset_tokens"("user_id")`,

		`CREATE TABLE IF NOT EXISTS "refresh_tokens" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"token" TEXT NOT NULL UNIQUE,
			"expires_at" DATETIME NOT NULL,
			"revoked_at" DATETIME,
			"created_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON "refresh_tokens"("user_id")`,
	}

	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedIdentity creates a bare login identity (no admins row) and returns it
// with a token carrying the given role claim.
func seedIdentity(db *gorm.DB, email, role string) (models.User, string) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     "Test User",
	}
	db.Create(&user)

	token, _ := utils.GenerateToken(user.ID, user.Email, role)
	return user, token
}

// seedAdmin creates an identity plus a matching admins row and returns both
// with a valid token.
func seedAdmin(db *gorm.DB, email, role string, active bool) (models.User, models.AdminUser, string) {
	user, token := seedIdentity(db, email, role)
	admin := models.AdminUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      role,
		IsActive:  active,
		CreatedBy: models.CreatedBySystem,
	}
	db.Create(&admin)
	// GORM may skip zero-value bools on Create, so force the flag.
	db.Model(&admin).Update("is_active", active)
	admin.IsActive = active
	return user, admin, token
}

func seedCategory(db *gorm.DB, name string, subNames ...string) models.Category {
	cat := models.Category{
		ID:   uuid.New(),
		Name: name,
	}
	for _, sub := range subNames {
		cat.AddSubCategory(sub, "")
	}
	db.Create(&cat)
	return cat
}

// seedProduct creates a product together with its price-list mirror row.
func seedProduct(db *gorm.DB, name, category string, mrp float64, stock int) models.Product {
	prod := models.Product{
		ID:          uuid.New(),
		Name:        name,
		MRP:         mrp,
		Category:    category,
		Stock:       stock,
		IsActive:    true,
		IsAvailable: true,
	}
	db.Create(&prod)
	record := prod.ListRecord()
	db.Create(&record)
	return prod
}

func seedAppSettings(db *gorm.DB, showSignUp bool) models.AppSettings {
	settings := models.AppSettings{
		ID:         models.AppSettingsID,
		ShowSignUp: showSignUp,
	}
	db.Create(&settings)
	db.Model(&settings).Update("show_sign_up", showSignUp)
	settings.ShowSignUp = showSignUp
	return settings
}

func seedStoreSettings(db *gorm.DB, storeName string) models.StoreSettings {
	settings := models.StoreSettings{
		ID:        models.StoreSettingsID,
		StoreName: storeName,
	}
	db.Create(&settings)
	return settings
}

// ==================== Router Setup Helpers ====================

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	authHandler := &AuthHandler{DB: db}

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/setup", authHandler.Setup)
	api.POST("/auth/refresh", authHandler.RefreshTokenHandler)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/auth/profile", authHandler.GetProfile)
	protected.POST("/auth/change-password", authHandler.ChangePassword)

	return r
}

func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	categoryHandler := &CategoryHandler{DB: db}

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.GET("/categories/:id", categoryHandler.GetCategory)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)
	protected.POST("/categories/:id/subcategories", categoryHandler.AddSubCategory)
	protected.PUT("/categories/:id/subcategories/:subId", categoryHandler.UpdateSubCategory)
	protected.DELETE("/categories/:id/subcategories/:subId", categoryHandler.DeleteSubCategory)

	return r
}

func setupProductRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	productHandler := &ProductHandler{DB: db}

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/products", productHandler.GetProducts)
	protected.GET("/products/:id", productHandler.GetProduct)
	protected.POST("/products", productHandler.CreateProduct)
	protected.PUT("/products/:id", productHandler.UpdateProduct)
	protected.DELETE("/products/:id", productHandler.DeleteProduct)
	protected.PATCH("/products/:id/toggle-active", productHandler.ToggleActive)
	protected.PATCH("/products/:id/toggle-available", productHandler.ToggleAvailable)

	return r
}

func setupPriceListRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	priceListHandler := &PriceListHandler{DB: db}

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/price-list", priceListHandler.GetPriceList)
	protected.GET("/price-list/export/pdf", priceListHandler.ExportPDF)
	protected.GET("/price-list/export/csv", priceListHandler.ExportCSV)

	return r
}

func setupInventoryRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	inventoryHandler := &InventoryHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}

	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/inventory", inventoryHandler.GetInventory)
	protected.GET("/dashboard/stats", dashboardHandler.GetStats)

	return r
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	userHandler := &UserHandler{DB: db}

	api := r.Group("/api")
	super := api.Group("")
	super.Use(middleware.AuthMiddleware())
	super.Use(middleware.SuperAdminMiddleware())
	super.GET("/users", userHandler.ListAdmins)
	super.POST("/users", userHandler.CreateAdmin)
	super.PATCH("/users/:id/toggle-status", userHandler.ToggleStatus)
	super.DELETE("/users/:id", userHandler.DeleteAdmin)

	return r
}

func setupSettingsRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	settingsHandler := &SettingsHandler{DB: db}

	api := r.Group("/api")
	api.GET("/settings/app", settingsHandler.GetAppSettings)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/settings/store", settingsHandler.GetStoreSettings)
	protected.PUT("/settings/store", settingsHandler.UpdateStoreSettings)

	super := api.Group("")
	super.Use(middleware.AuthMiddleware())
	super.Use(middleware.SuperAdminMiddleware())
	super.PUT("/settings/app", settingsHandler.UpdateAppSettings)

	return r
}

// ==================== Request Helpers ====================

// jsonRequest creates an HTTP request with JSON body.
func jsonRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authRequest creates an HTTP request with JSON body and Authorization header.
func authRequest(method, url string, body interface{}, token string) *http.Request {
	req := jsonRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// multipartRequest creates a multipart form request with the given file
// uploads. files maps form field names to filenames; fileData is the content
// written for each file part.
func multipartRequest(method, url string, files map[string]string, fileData []byte, contentType, token string) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for fieldName, filename := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, filename))
		h.Set("Content-Type", contentType)

		part, err := writer.CreatePart(h)
		if err != nil {
			panic("failed to create multipart file part: " + err.Error())
		}
		part.Write(fileData)
	}

	writer.Close()

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// ==================== Response Helpers ====================

// parseResponse reads the response body into a map.
func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// parseResponseArray reads the response body into a slice of maps.
func parseResponseArray(w *httptest.ResponseRecorder) []interface{} {
	var result []interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

