package repositories

import "jajis/internal/models"

// CheckoutStore is the set of data-store operations the order commit needs.
// Every method runs against the same underlying database transaction, so
// either all of the commit's writes become visible or none do.
type CheckoutStore interface {
	GetCartItems(userID string) ([]models.CartItem, error)
	GetVariantByID(id string) (*models.ProductVariant, error)
	CreateOrder(order *models.Order) error
	CreateOrderItem(item *models.OrderItem) error
	UpdateVariantStock(variantID string, stock int) error
	DeleteCartItem(itemID string) error
	UpdateTransaction(tx *models.PaymentTransaction) error
}

// TxRunner executes a unit of work inside a single database transaction.
// If fn returns an error the transaction is rolled back in full.
type TxRunner interface {
	RunInTransaction(fn func(store CheckoutStore) error) error
}
