package paymentController

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/middleware"
	"github.com/Subhashtm/Brownie/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.PaymentUpload{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func paymentRouter(db *gorm.DB, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asUser := func(c *gin.Context) { c.Set(middleware.CtxUserEmail, email) }
	r.POST("/api/upload-payment-receipt/:order_id", asUser, UploadReceipt(db))
	r.PUT("/api/admin/payment-uploads/:id/status", UpdateUploadStatus(db))
	r.GET("/api/admin/payment-uploads", ListUploads(db))
	return r
}

func receiptRequest(t *testing.T, path, filename, contentType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	mw.WriteField("notes", "paid via UPI")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadReceipt(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", TotalAmount: 11, Status: models.OrderStatusPending})
	r := paymentRouter(db, "alice@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, receiptRequest(t, "/api/upload-payment-receipt/1", "receipt.png", "image/png"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var upload models.PaymentUpload
	if err := db.First(&upload).Error; err != nil {
		t.Fatalf("upload row not created: %v", err)
	}
	if upload.Status != models.UploadStatusPending {
		t.Errorf("status = %s, want pending", upload.Status)
	}
	if upload.OrderID != 1 || upload.UserEmail != "alice@example.com" {
		t.Errorf("upload = %+v", upload)
	}
	if upload.Notes != "paid via UPI" {
		t.Errorf("notes = %q", upload.Notes)
	}
}

func TestUploadReceiptRejectsNonImage(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", Status: models.OrderStatusPending})
	r := paymentRouter(db, "alice@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, receiptRequest(t, "/api/upload-payment-receipt/1", "receipt.pdf", "application/pdf"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.PaymentUpload{}).Count(&count)
	if count != 0 {
		t.Errorf("upload rows = %d, want 0", count)
	}
}

func TestUploadReceiptWrongOwner(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", Status: models.OrderStatusPending})
	r := paymentRouter(db, "bob@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, receiptRequest(t, "/api/upload-payment-receipt/1", "receipt.png", "image/png"))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApprovalConfirmsOrder(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", Status: models.OrderStatusPending})
	db.Create(&models.PaymentUpload{OrderID: 1, UserEmail: "alice@example.com", FilePath: "x", Status: models.UploadStatusPending})
	r := paymentRouter(db, "admin@brownieshop.com")

	w := putJSON(r, "/api/admin/payment-uploads/1/status", `{"status":"approved","admin_notes":"looks good"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	db.First(&order, 1)
	if order.Status != models.OrderStatusConfirmed {
		t.Errorf("order status = %s, want confirmed", order.Status)
	}

	var upload models.PaymentUpload
	db.First(&upload, 1)
	if upload.Status != models.UploadStatusApproved {
		t.Errorf("upload status = %s, want approved", upload.Status)
	}
	if upload.AdminNotes != "looks good" {
		t.Errorf("admin notes = %q", upload.AdminNotes)
	}
}

func TestRejectionLeavesOrderPending(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", Status: models.OrderStatusPending})
	db.Create(&models.PaymentUpload{OrderID: 1, UserEmail: "alice@example.com", FilePath: "x", Status: models.UploadStatusPending})
	r := paymentRouter(db, "admin@brownieshop.com")

	w := putJSON(r, "/api/admin/payment-uploads/1/status", `{"status":"rejected","admin_notes":"blurry photo"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	db.First(&order, 1)
	if order.Status != models.OrderStatusPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}

	var upload models.PaymentUpload
	db.First(&upload, 1)
	if upload.Status != models.UploadStatusRejected {
		t.Errorf("upload status = %s, want rejected", upload.Status)
	}
}

func TestUpdateStatusUnknownUpload(t *testing.T) {
	db := openTestDB(t)
	r := paymentRouter(db, "admin@brownieshop.com")

	if w := putJSON(r, "/api/admin/payment-uploads/42/status", `{"status":"approved"}`); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
