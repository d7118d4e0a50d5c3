package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid product payload", err))
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			Category:    "brownie",
			Available:   true,
		}
		if input.Category != "" {
			product.Category = input.Category
		}
		if input.Available != nil {
			product.Available = *input.Available
		}

		if err := db.Create(&product).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to create product", err))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
