package cartController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/middleware"
	"github.com/Subhashtm/Brownie/models"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /api/cart/add — a repeat add for the same product accumulates
// quantity on the existing row instead of inserting a second one.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid cart payload", err))
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Product does not exist"))
			} else {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to validate product", err))
			}
			return
		}

		var item models.CartItem
		err := db.Where("user_email = ? AND product_id = ?", email, input.ProductID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserEmail: email,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to add item to cart", err))
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
			return
		}
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch cart item", err))
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to update cart item", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_email = ?", email).Order("id asc").Find(&items).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch cart", err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /api/cart/:id — scoped to the owner so one user cannot remove
// another user's rows by guessing ids.
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)
		itemID := c.Param("id")

		result := db.Where("id = ? AND user_email = ?", itemID, email).Delete(&models.CartItem{})
		if result.Error != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to delete item", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "Cart item not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}
