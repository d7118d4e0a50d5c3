package models

import "time"

type UploadStatus string

const (
	UploadStatusPending  UploadStatus = "pending"
	UploadStatusApproved UploadStatus = "approved"
	UploadStatusRejected UploadStatus = "rejected"
)

// PaymentUpload is a customer-submitted payment receipt awaiting admin review.
type PaymentUpload struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	OrderID    uint         `gorm:"index;not null" json:"order_id"`
	UserEmail  string       `gorm:"index;not null" json:"user_email"`
	FilePath   string       `gorm:"not null" json:"file_path"`
	Notes      string       `json:"notes"`
	Status     UploadStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	AdminNotes string       `json:"admin_notes"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
