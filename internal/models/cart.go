package models

import "time"

// CartItem is one line of a user's cart. At most one line exists per
// (user, variant) pair; adding the same variant again merges quantities.
// Deletes are hard deletes: soft deletion would leave the unique
// (user_id, variant_id) key occupied and block re-adding the variant.
type CartItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string          `json:"user_id" gorm:"uniqueIndex:idx_cart_user_variant;type:varchar(36)" validate:"required"`
	VariantID string          `json:"variant_id" gorm:"uniqueIndex:idx_cart_user_variant;type:varchar(36)" validate:"required"`
	Variant   *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LineTotal is the line's current price: quantity times the variant's live price.
func (ci *CartItem) LineTotal() float64 {
	if ci.Variant == nil {
		return 0
	}
	return float64(ci.Quantity) * ci.Variant.Price
}
