package routes

import (
	"time"

	"kirana-admin-backend/cloudinary"
	"kirana-admin-backend/handlers"
	"kirana-admin-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, uploader cloudinary.Client) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	priceListHandler := &handlers.PriceListHandler{DB: db}
	inventoryHandler := &handlers.InventoryHandler{DB: db}
	dashboardHandler := &handlers.DashboardHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	settingsHandler := &handlers.SettingsHandler{DB: db}
	uploadHandler := &handlers.UploadHandler{Uploader: uploader}

	loginLimiter := middleware.NewRateLimiter(5, 15*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/setup", authHandler.Setup)
		api.POST("/auth/refresh", authHandler.RefreshTokenHandler)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// The login page reads showSignUp before anyone has a token
		api.GET("/settings/app", settingsHandler.GetAppSettings)
	}

	// Protected routes (any authenticated admin)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		// Taxonomy
		protected.GET("/categories", categoryHandler.GetCategories)
		protected.GET("/categories/:id", categoryHandler.GetCategory)
		protected.POST("/categories", categoryHandler.CreateCategory)
		protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
		protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)
		protected.POST("/categories/:id/subcategories", categoryHandler.AddSubCategory)
		protected.PUT("/categories/:id/subcategories/:subId", categoryHandler.UpdateSubCategory)
		protected.DELETE("/categories/:id/subcategories/:subId", categoryHandler.DeleteSubCategory)

		// Catalog
		protected.GET("/products", productHandler.GetProducts)
		protected.GET("/products/:id", productHandler.GetProduct)
		protected.POST("/products", productHandler.CreateProduct)
		protected.PUT("/products/:id", productHandler.UpdateProduct)
		protected.DELETE("/products/:id", productHandler.DeleteProduct)
		protected.PATCH("/products/:id/toggle-active", productHandler.ToggleActive)
		protected.PATCH("/products/:id/toggle-available", productHandler.ToggleAvailable)

		// Price list and exports
		protected.GET("/price-list", priceListHandler.GetPriceList)
		protected.GET("/price-list/export/pdf", priceListHandler.ExportPDF)
		protected.GET("/price-list/export/csv", priceListHandler.ExportCSV)

		// Inventory and dashboard
		protected.GET("/inventory", inventoryHandler.GetInventory)
		protected.GET("/dashboard/stats", dashboardHandler.GetStats)

		// Store profile
		protected.GET("/settings/store", settingsHandler.GetStoreSettings)
		protected.PUT("/settings/store", settingsHandler.UpdateStoreSettings)

		// Image upload
		protected.POST("/upload", uploadHandler.UploadImage)
	}

	// Super-admin routes
	super := api.Group("")
	super.Use(middleware.AuthMiddleware())
	super.Use(middleware.SuperAdminMiddleware())
	{
		super.GET("/users", userHandler.ListAdmins)
		super.POST("/users", userHandler.CreateAdmin)
		super.PATCH("/users/:id/toggle-status", userHandler.ToggleStatus)
		super.DELETE("/users/:id", userHandler.DeleteAdmin)

		super.PUT("/settings/app", settingsHandler.UpdateAppSettings)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
