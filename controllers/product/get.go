package productController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Invalid product ID"))
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindNotFound, "Product not found"))
			} else {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to retrieve product", err))
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
