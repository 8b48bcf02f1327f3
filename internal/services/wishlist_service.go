package services

import (
	"jajis/internal/models"
	"jajis/internal/repositories"
)

// WishlistService handles business logic for wishlists.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	catalogRepo  repositories.CatalogRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, catalogRepo repositories.CatalogRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		catalogRepo:  catalogRepo,
	}
}

// GetWishlist retrieves the user's wishlist items.
func (s *WishlistService) GetWishlist(userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetByUser(userID)
}

// Add puts a variant on the user's wishlist. Adding an already-listed
// variant is a no-op; the returned bool reports whether a row was created.
func (s *WishlistService) Add(userID string, variantID string) (bool, error) {
	if _, err := s.catalogRepo.GetVariantByID(variantID); err != nil {
		return false, ErrVariantNotFound
	}

	if _, err := s.wishlistRepo.GetItem(userID, variantID); err == nil {
		return false, nil
	}

	err := s.wishlistRepo.Create(&models.WishlistItem{
		UserID:    userID,
		VariantID: variantID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove takes a variant off the user's wishlist.
func (s *WishlistService) Remove(userID string, variantID string) error {
	return s.wishlistRepo.Delete(userID, variantID)
}

// Toggle adds the variant if absent and removes it if present. The
// returned bool reports whether the variant is now on the wishlist.
func (s *WishlistService) Toggle(userID string, variantID string) (bool, error) {
	if _, err := s.catalogRepo.GetVariantByID(variantID); err != nil {
		return false, ErrVariantNotFound
	}

	if _, err := s.wishlistRepo.GetItem(userID, variantID); err == nil {
		if err := s.wishlistRepo.Delete(userID, variantID); err != nil {
			return false, err
		}
		return false, nil
	}

	err := s.wishlistRepo.Create(&models.WishlistItem{
		UserID:    userID,
		VariantID: variantID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
