package repositories

import "jajis/internal/models"

// CartRepository defines the interface for cart line data access.
// All operations are scoped to the owning user.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetLine(userID string, variantID string) (*models.CartItem, error)
	GetLineByID(userID string, itemID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(itemID string, quantity int) error
	Delete(itemID string) error
}
