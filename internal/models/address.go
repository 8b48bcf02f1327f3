package models

import "gorm.io/gorm"

// Address is a saved postal address in a user's address book.
type Address struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"index;type:varchar(36)"`
	Label      string `json:"label" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Line1      string `json:"line1" gorm:"type:varchar(255)" validate:"required,max=255"`
	Line2      string `json:"line2" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	City       string `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	State      string `json:"state" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	Country    string `json:"country" gorm:"type:varchar(100);default:India" validate:"omitempty,max=100"`
	Phone      string `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	IsDefault  bool   `json:"is_default"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
