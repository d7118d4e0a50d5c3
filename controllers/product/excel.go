package productController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

// Column order shared by export and import.
var excelHeaders = []string{"ID", "Name", "Description", "Price", "Category", "Available", "ImageURL", "CreatedAt"}

// GET /api/admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id asc").Find(&products).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch products", err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to create Excel sheet", err))
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(strconv.FormatBool(p.Available))
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to write Excel file", err))
			return
		}
	}
}

// POST /api/admin/products/import-excel
//
// Rows with an existing ID update that product; rows without one insert.
// Malformed rows are skipped, not fatal.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Excel file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to open Excel file", err))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, fileHeader.Size)
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "Failed to parse Excel file", err))
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Excel file is empty or missing header row"))
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := get(4)
			available := !strings.EqualFold(get(5), "false")
			imageURL := get(6)

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}
			if category == "" {
				category = "brownie"
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = name
						existing.Description = description
						existing.Price = price
						existing.Category = category
						existing.Available = available
						existing.ImageURL = imageURL
						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				Category:    category,
				Available:   available,
				ImageURL:    imageURL,
			}
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
