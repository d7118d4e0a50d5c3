package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	eventsController "github.com/Subhashtm/Brownie/controllers/events"
	orderController "github.com/Subhashtm/Brownie/controllers/order"
	paymentController "github.com/Subhashtm/Brownie/controllers/payment"
	productController "github.com/Subhashtm/Brownie/controllers/product"
	settingsController "github.com/Subhashtm/Brownie/controllers/settings"
	uploadController "github.com/Subhashtm/Brownie/controllers/upload"
	userController "github.com/Subhashtm/Brownie/controllers/user"
	"github.com/Subhashtm/Brownie/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a valid
// token whose subject is the configured admin identity.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		products := admin.Group("/products")
		{
			products.GET("", productController.GetAllProductsAdmin(db))
			products.POST("", productController.CreateProduct(db))
			products.PUT("/:id", productController.UpdateProduct(db))
			products.DELETE("/:id", productController.DeleteProduct(db))
			products.GET("/export-excel", productController.ExportProductsToExcel(db))
			products.POST("/import-excel", productController.ImportProductsFromExcel(db))
		}

		admin.POST("/upload-image", uploadController.UploadImageHandler())

		// ─────────── Orders & Payment Review ───────────
		admin.GET("/orders", orderController.GetAllOrders(db))
		admin.GET("/payment-uploads", paymentController.ListUploads(db))
		admin.PUT("/payment-uploads/:id/status", paymentController.UpdateUploadStatus(db))

		// ─────────── Shop Settings ───────────
		admin.PUT("/contact", settingsController.UpdateContactInfo(db))
		admin.PUT("/payment-info", settingsController.UpdatePaymentInfo(db))
		admin.PUT("/company-info", settingsController.UpdateCompanyInfo(db))

		// ─────────── Users & Live Feed ───────────
		admin.GET("/users", userController.GetAllUsers(db))
		admin.GET("/events/ws", eventsController.AdminEventsHandler)
	}
}
