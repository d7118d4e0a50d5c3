package orderController

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
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
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func orderRouter(db *gorm.DB, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	asUser := func(c *gin.Context) { c.Set(middleware.CtxUserEmail, email) }
	r.POST("/api/create-order", asUser, CreateOrder(db))
	r.GET("/api/orders", asUser, GetUserOrders(db))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderClearsCart(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.Product{Name: "Fudge Brownie", Price: 5.50})
	db.Create(&models.CartItem{UserEmail: "alice@example.com", ProductID: 1, Quantity: 2})
	r := orderRouter(db, "alice@example.com")

	body := `{"items":[{"product_id":1,"quantity":2,"price":5.50}],"total_amount":11.00}`
	if w := postJSON(r, "/api/create-order", body); w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_email = ?", "alice@example.com").Count(&cartCount)
	if cartCount != 0 {
		t.Errorf("cart rows after order = %d, want 0", cartCount)
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, "user_email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("order not created: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}
	if order.TotalAmount != 11.00 {
		t.Errorf("total = %.2f, want 11.00", order.TotalAmount)
	}
	if len(order.Items) != 1 {
		t.Fatalf("order items = %d, want 1", len(order.Items))
	}
	if order.Items[0].Price != 5.50 || order.Items[0].Quantity != 2 {
		t.Errorf("item snapshot = %+v", order.Items[0])
	}
}

func TestCreateOrderEmptyCartStillEmpties(t *testing.T) {
	// Cart clearing is unconditional: whatever the cart held, it is empty
	// after a successful order.
	db := openTestDB(t)
	db.Create(&models.CartItem{UserEmail: "alice@example.com", ProductID: 7, Quantity: 9})
	r := orderRouter(db, "alice@example.com")

	body := `{"items":[{"product_id":1,"quantity":1,"price":2.00}],"total_amount":2.00}`
	if w := postJSON(r, "/api/create-order", body); w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_email = ?", "alice@example.com").Count(&cartCount)
	if cartCount != 0 {
		t.Errorf("cart rows = %d, want 0", cartCount)
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := openTestDB(t)
	r := orderRouter(db, "alice@example.com")

	if w := postJSON(r, "/api/create-order", `{"items":[],"total_amount":0}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders created = %d, want 0", count)
	}
}

func TestGetUserOrdersScoped(t *testing.T) {
	db := openTestDB(t)
	db.Create(&models.Order{UserEmail: "alice@example.com", TotalAmount: 10, Status: models.OrderStatusPending})
	db.Create(&models.Order{UserEmail: "bob@example.com", TotalAmount: 20, Status: models.OrderStatusPending})
	r := orderRouter(db, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "alice@example.com") || strings.Contains(body, "bob@example.com") {
		t.Errorf("orders not scoped to caller: %s", body)
	}
}
