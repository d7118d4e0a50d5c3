package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Product ID is required"))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "Product not found"))
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to delete product", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
