package models

import "time"

// WishlistItem marks a variant as saved by a user. One row per (user,
// variant). Deletes are hard deletes so the unique pair can be re-added
// after removal or a toggle off.
type WishlistItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string          `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_variant;type:varchar(36)" validate:"required"`
	VariantID string          `json:"variant_id" gorm:"uniqueIndex:idx_wishlist_user_variant;type:varchar(36)" validate:"required"`
	Variant   *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
