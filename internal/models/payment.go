package models

import "time"

// PaymentTransaction statuses. A transaction is terminal once it leaves
// TxStatusCreated; there is no transition out of success or failed.
const (
	TxStatusCreated = "created"
	TxStatusSuccess = "success"
	TxStatusFailed  = "failed"
)

// PaymentTransaction tracks one in-flight checkout attempt against the
// payment gateway. At most one row per user may hold TxStatusCreated:
// a new intent deletes the previous created row before inserting itself.
type PaymentTransaction struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID            string    `json:"user_id" gorm:"index;type:varchar(36)"`
	GatewayOrderID    string    `json:"gateway_order_id" gorm:"index;type:varchar(200)"`
	GatewayPaymentID  string    `json:"gateway_payment_id" gorm:"type:varchar(200)"`
	GatewaySignature  string    `json:"-" gorm:"type:varchar(255)"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status" gorm:"type:varchar(20);default:created"`
	ShippingAddressID string    `json:"shipping_address_id" gorm:"type:varchar(36)"`
	BillingAddressID  string    `json:"billing_address_id" gorm:"type:varchar(36)"`
	OrderID           string    `json:"order_id" gorm:"type:varchar(36)"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
