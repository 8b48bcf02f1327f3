package models

import "gorm.io/gorm"

// Category groups products for browsing and filtering.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(150)" validate:"required,min=2,max=150"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Product represents a catalog entry. Pricing and stock live on its variants.
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CategoryID  string           `json:"category_id" gorm:"index;type:varchar(36)" validate:"required"`
	Category    *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title       string           `json:"title" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Description string           `json:"description" validate:"omitempty,max=2000"`
	Brand       string           `json:"brand" gorm:"type:varchar(100);default:jajis" validate:"omitempty,max=100"`
	ImageURL    string           `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,url"`
	Variants    []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model                   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductVariant is a purchasable unit of a product (size/pack variant).
// Stock is the only field the checkout flow ever mutates.
type ProductVariant struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID     string  `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	QuantityLabel string  `json:"quantity_label" gorm:"type:varchar(50)" validate:"required,max=50"`
	MRP           float64 `json:"mrp" validate:"required,gt=0"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Stock         int     `json:"stock" validate:"gte=0"`
	SKU           string  `json:"sku" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
