package settingsController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

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
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func settingsRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/contact", GetContactInfo(db))
	r.PUT("/api/admin/contact", UpdateContactInfo(db))
	r.GET("/api/payment-info", GetPaymentInfo(db))
	r.PUT("/api/admin/payment-info", UpdatePaymentInfo(db))
	return r
}

func TestContactInfoDefaults(t *testing.T) {
	db := openTestDB(t)
	r := settingsRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got ContactInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Email != "contact@brownieshop.com" {
		t.Errorf("default email = %q", got.Email)
	}
}

func TestContactInfoUpsert(t *testing.T) {
	db := openTestDB(t)
	r := settingsRouter(db)

	put := func(body string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodPut, "/api/admin/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("put status = %d: %s", w.Code, w.Body.String())
		}
	}

	put(`{"email":"hello@shop.com","phone":"123","address":"1 Main St"}`)
	// Second write must overwrite, not duplicate the key.
	put(`{"email":"second@shop.com","phone":"456","address":"2 Main St"}`)

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got ContactInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Email != "second@shop.com" || got.Phone != "456" {
		t.Errorf("got %+v after upsert", got)
	}
}

func TestPaymentInfoRoundTrip(t *testing.T) {
	db := openTestDB(t)
	r := settingsRouter(db)

	body := `{"qr_code_url":"/uploads/qr.png","payment_email":"pay@shop.com"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/payment-info", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/payment-info", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got PaymentInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.QRCodeURL != "/uploads/qr.png" || got.PaymentEmail != "pay@shop.com" {
		t.Errorf("got %+v", got)
	}
}
