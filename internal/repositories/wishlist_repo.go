package repositories

import "jajis/internal/models"

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	GetItem(userID string, variantID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(userID string, variantID string) error
}
