package models

import "time"

// CartItem holds one (user, product) line. Repeat adds for the same
// product accumulate into the existing row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"index;not null" json:"user_email"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	AddedAt   time.Time `json:"added_at"`
}
