package repositories

import "jajis/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// created inside the checkout transaction (see CheckoutStore); this
// interface only serves reads.
type OrderRepository interface {
	GetByUser(userID string) ([]models.Order, error)
	GetByID(userID string, orderID string) (*models.Order, error)
}
