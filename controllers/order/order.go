package orderController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	eventsController "github.com/Subhashtm/Brownie/controllers/events"
	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/middleware"
	"github.com/Subhashtm/Brownie/models"
)

type OrderLineInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

type CreateOrderInput struct {
	Items       []OrderLineInput `json:"items" binding:"required"`
	TotalAmount float64          `json:"total_amount"`
}

// POST /api/create-order
//
// The client-declared line prices and total are stored as-is; the catalog is
// not consulted for re-pricing. Order, items and cart clearing run in one
// transaction so a failed step leaves no half-created order behind.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid order payload", err))
			return
		}
		if len(input.Items) == 0 {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Order must contain at least one item"))
			return
		}

		order := models.Order{
			UserEmail:   email,
			TotalAmount: input.TotalAmount,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		for _, line := range input.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			return tx.Where("user_email = ?", email).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to create order", err))
			return
		}

		eventsController.Broadcast("order_created", order)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Order created successfully",
			"order_id": order.ID,
			"status":   order.Status,
		})
	}
}

// GET /api/orders — the caller's own orders, newest first.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_email = ?", email).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
