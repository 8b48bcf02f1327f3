package repositories

import (
	"fmt"
	"jajis/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves all wishlist items for a user with variants preloaded.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Preload("Variant").Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// GetItem retrieves the wishlist entry for a (user, variant) pair, if any.
func (r *GORMWishlistRepository) GetItem(userID string, variantID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.First(&item, "user_id = ? AND variant_id = ?", userID, variantID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("wishlist item for variant %s not found", variantID)
		}
		return nil, fmt.Errorf("failed to get wishlist item: %w", err)
	}
	return &item, nil
}

// Create creates a new wishlist entry.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// Delete removes a wishlist entry by (user, variant).
func (r *GORMWishlistRepository) Delete(userID string, variantID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "user_id = ? AND variant_id = ?", userID, variantID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item for variant %s not found for deletion", variantID)
	}
	return nil
}
