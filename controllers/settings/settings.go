package settingsController

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Subhashtm/Brownie/httperr"
	"github.com/Subhashtm/Brownie/models"
)

type ContactInfo struct {
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type PaymentInfo struct {
	QRCodeURL    string `json:"qr_code_url"`
	PaymentEmail string `json:"payment_email" binding:"required"`
}

type CompanyInfo struct {
	Name    string `json:"name" binding:"required"`
	Tagline string `json:"tagline"`
	About   string `json:"about"`
}

// Defaults served when the settings row has never been written.
var (
	defaultContact = ContactInfo{
		Email:   "contact@brownieshop.com",
		Phone:   "+91-9876543210",
		Address: "123 Brownie St",
	}
	defaultPayment = PaymentInfo{
		QRCodeURL:    "",
		PaymentEmail: "payments@brownieshop.com",
	}
	defaultCompany = CompanyInfo{
		Name:    "AniAthu's Brownies",
		Tagline: "Baked fresh, delivered warm",
	}
)

// getSetting reads key and decodes it into out, falling back to fallback
// when the row does not exist.
func getSetting(c *gin.Context, db *gorm.DB, key string, fallback interface{}) {
	value, err := models.GetSetting(db, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, fallback)
		return
	}
	if err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to fetch settings", err))
		return
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Corrupt settings value", err))
		return
	}
	c.JSON(http.StatusOK, decoded)
}

func putSetting(c *gin.Context, db *gorm.DB, key string, in interface{}, message string) {
	if err := c.ShouldBindJSON(in); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.KindInvalidInput, "invalid settings payload", err))
		return
	}
	encoded, err := json.Marshal(in)
	if err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to encode settings", err))
		return
	}
	if err := models.UpsertSetting(db, key, string(encoded)); err != nil {
		httperr.Respond(c, httperr.Wrap(httperr.KindUpstreamFailure, "Failed to save settings", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GET /api/contact
func GetContactInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { getSetting(c, db, models.SettingContactInfo, defaultContact) }
}

// PUT /api/admin/contact
func UpdateContactInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		putSetting(c, db, models.SettingContactInfo, &ContactInfo{}, "Contact info updated")
	}
}

// GET /api/payment-info
func GetPaymentInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { getSetting(c, db, models.SettingPaymentInfo, defaultPayment) }
}

// PUT /api/admin/payment-info
func UpdatePaymentInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		putSetting(c, db, models.SettingPaymentInfo, &PaymentInfo{}, "Payment info updated")
	}
}

// GET /api/company-info
func GetCompanyInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { getSetting(c, db, models.SettingCompanyInfo, defaultCompany) }
}

// PUT /api/admin/company-info
func UpdateCompanyInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		putSetting(c, db, models.SettingCompanyInfo, &CompanyInfo{}, "Company info updated")
	}
}
