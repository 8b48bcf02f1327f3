package repositories

import "jajis/internal/models"

// PaymentTransactionRepository defines the interface for pending-checkout
// transaction records.
type PaymentTransactionRepository interface {
	// GetByGatewayOrderID looks up the caller's transaction for a gateway
	// order id, regardless of status.
	GetByGatewayOrderID(userID string, gatewayOrderID string) (*models.PaymentTransaction, error)
	// ReplacePending atomically deletes any of the user's transactions still
	// in "created" status and inserts the given one, so at most one pending
	// intent exists per user.
	ReplacePending(tx *models.PaymentTransaction) error
	// Update persists status transitions and gateway payment details.
	Update(tx *models.PaymentTransaction) error
}
