package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is a single JSON-encoded shop configuration value keyed by name
// (contact_info, payment_info, company_info).
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	SettingContactInfo = "contact_info"
	SettingPaymentInfo = "payment_info"
	SettingCompanyInfo = "company_info"
)

// UpsertSetting inserts the key or overwrites its value if it already exists.
func UpsertSetting(db *gorm.DB, key, value string) error {
	s := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
}

// GetSetting returns the stored value for key, or "" with gorm.ErrRecordNotFound.
func GetSetting(db *gorm.DB, key string) (string, error) {
	var s Setting
	if err := db.First(&s, "key = ?", key).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}
