package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/auth"
	productController "github.com/Subhashtm/Brownie/controllers/product"
	settingsController "github.com/Subhashtm/Brownie/controllers/settings"
)

// SetupPublicRoutes registers everything reachable without a token:
// registration, login, catalog reads, and shop info.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	{
		api.POST("/register", auth.RegisterHandler(db))
		api.POST("/login", auth.LoginHandler(db))

		api.GET("/products", productController.GetProducts(db))
		api.GET("/products/:id", productController.GetProductByID(db))

		api.GET("/contact", settingsController.GetContactInfo(db))
		api.GET("/payment-info", settingsController.GetPaymentInfo(db))
		api.GET("/company-info", settingsController.GetCompanyInfo(db))
	}
}
