package models

import "gorm.io/gorm"

// Order statuses. Checkout only ever creates orders in StatusConfirmed;
// the remaining statuses belong to fulfillment.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// Order is the immutable artifact of a successful checkout.
type Order struct {
	ID                string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID            string      `json:"user_id" gorm:"index;type:varchar(36)"`
	ShippingAddressID string      `json:"shipping_address_id" gorm:"type:varchar(36)"`
	ShippingAddress   *Address    `json:"shipping_address,omitempty" gorm:"foreignKey:ShippingAddressID"`
	BillingAddressID  string      `json:"billing_address_id" gorm:"type:varchar(36)"`
	BillingAddress    *Address    `json:"billing_address,omitempty" gorm:"foreignKey:BillingAddressID"`
	TotalAmount       float64     `json:"total_amount"`
	ShippingCost      float64     `json:"shipping_cost"`
	Status            string      `json:"status" gorm:"type:varchar(20);default:pending"`
	PaymentMethod     string      `json:"payment_method" gorm:"type:varchar(100)"`
	PaymentStatus     string      `json:"payment_status" gorm:"type:varchar(50);default:unpaid"`
	TransactionID     string      `json:"transaction_id" gorm:"type:varchar(255)"`
	Items             []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	gorm.Model                    // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OrderItem is a priced snapshot of one cart line at commit time. It is
// decoupled from later price or stock changes on the variant.
type OrderItem struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OrderID    string          `json:"order_id" gorm:"index;type:varchar(36)"`
	VariantID  string          `json:"variant_id" gorm:"type:varchar(36)"`
	Variant    *ProductVariant `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	Quantity   int             `json:"quantity"`
	UnitPrice  float64         `json:"unit_price"`
	TotalPrice float64         `json:"total_price"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
