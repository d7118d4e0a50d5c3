package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartController "github.com/Subhashtm/Brownie/controllers/cart"
	orderController "github.com/Subhashtm/Brownie/controllers/order"
	paymentController "github.com/Subhashtm/Brownie/controllers/payment"
	"github.com/Subhashtm/Brownie/middleware"
)

// SetupUserRoutes registers the authenticated customer endpoints. The
// resolved token subject scopes every cart and order row to its owner.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		cart := api.Group("/cart")
		{
			cart.POST("/add", cartController.AddToCart(db))
			cart.GET("", cartController.GetCart(db))
			cart.DELETE("/:id", cartController.RemoveFromCart(db))
		}

		api.POST("/create-order", orderController.CreateOrder(db))
		api.GET("/orders", orderController.GetUserOrders(db))

		api.POST("/upload-payment-receipt/:order_id", paymentController.UploadReceipt(db))
	}
}
