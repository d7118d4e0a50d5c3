package paymentController

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	eventsController "github.com/Subhashtm/Brownie/controllers/events"
	uploadController "github.com/Subhashtm/Brownie/controllers/upload"
	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/mailer"
	"github.com/Subhashtm/Brownie/middleware"
	"github.com/Subhashtm/Brownie/models"
)

// POST /api/upload-payment-receipt/:order_id
//
// Stores the receipt image, records a pending payment upload, then notifies
// the admin by mail with the receipt attached. Mail delivery is best-effort:
// failure is logged and the request still succeeds.
func UploadReceipt(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)

		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Invalid order ID"))
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_email = ?", orderID, email).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindNotFound, "Order not found"))
			} else {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch order", err))
			}
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "Receipt image is required"))
			return
		}
		notes := c.PostForm("notes")

		savedPath, _, err := uploadController.SaveImage(c, file)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		upload := models.PaymentUpload{
			OrderID:   order.ID,
			UserEmail: email,
			FilePath:  savedPath,
			Notes:     notes,
			Status:    models.UploadStatusPending,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&upload).Error; err != nil {
			// The row never made it in, so drop the stored file too.
			os.Remove(savedPath)
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to record payment upload", err))
			return
		}

		notifyAdmin(order, upload, savedPath)
		eventsController.Broadcast("receipt_uploaded", upload)

		c.JSON(http.StatusOK, gin.H{
			"message":   "Receipt uploaded successfully",
			"upload_id": upload.ID,
			"status":    upload.Status,
		})
	}
}

func notifyAdmin(order models.Order, upload models.PaymentUpload, path string) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	body := fmt.Sprintf(
		"A payment receipt was submitted.\n\nOrder:  #%d\nUser:   %s\nTotal:  %.2f\nNotes:  %s\n",
		order.ID, upload.UserEmail, order.TotalAmount, upload.Notes,
	)

	var attachment *mailer.Attachment
	if data, err := os.ReadFile(path); err == nil {
		attachment = &mailer.Attachment{Filename: filepath.Base(path), Data: data}
	} else {
		log.Printf("failed to read receipt for mail attachment: %v", err)
	}

	subject := fmt.Sprintf("Payment receipt for order #%d", order.ID)
	if err := mailer.Send(adminEmail, subject, body, attachment); err != nil {
		log.Printf("admin notification failed for order %d: %v", order.ID, err)
	}
}

// GET /api/admin/payment-uploads
func ListUploads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uploads []models.PaymentUpload
		if err := db.Order("created_at DESC").Find(&uploads).Error; err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch payment uploads", err))
			return
		}
		c.JSON(http.StatusOK, uploads)
	}
}

type UpdateUploadStatusInput struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// PUT /api/admin/payment-uploads/:id/status
//
// Any status value is stored; only the literal "approved" has a side effect,
// confirming the owning order. Rejection changes nothing else.
func UpdateUploadStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploadID := c.Param("id")

		var upload models.PaymentUpload
		if err := db.First(&upload, "id = ?", uploadID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.New(httperr.KindNotFound, "Payment upload not found"))
			} else {
				httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch payment upload", err))
			}
			return
		}

		var input UpdateUploadStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid status payload", err))
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"status":      input.Status,
				"admin_notes": input.AdminNotes,
			}
			if err := tx.Model(&upload).Updates(updates).Error; err != nil {
				return err
			}
			if input.Status == string(models.UploadStatusApproved) {
				return tx.Model(&models.Order{}).
					Where("id = ? AND status = ?", upload.OrderID, models.OrderStatusPending).
					Update("status", models.OrderStatusConfirmed).Error
			}
			return nil
		})
		if err != nil {
			httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to update payment upload", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment upload updated", "status": input.Status})
	}
}
