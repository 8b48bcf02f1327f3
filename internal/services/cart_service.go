package services

import (
	"fmt"

	"jajis/internal/models"
	"jajis/internal/repositories"
)

// CartView is a user's cart with per-line and overall totals.
type CartView struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// CartService handles business logic for the shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	catalogRepo repositories.CatalogRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, catalogRepo repositories.CatalogRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// GetCart retrieves the user's cart lines and computes the running total.
func (s *CartService) GetCart(userID string) (*CartView, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	var total float64
	for i := range items {
		total += items[i].LineTotal()
	}
	return &CartView{Items: items, Total: total}, nil
}

// AddToCart adds a variant to the user's cart, merging with an existing
// line. Quantities are gated by the variant's current stock at add time.
func (s *CartService) AddToCart(userID string, variantID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	variant, err := s.catalogRepo.GetVariantByID(variantID)
	if err != nil {
		return ErrVariantNotFound
	}
	if variant.Stock < quantity {
		return ErrInsufficientStock
	}

	line, err := s.cartRepo.GetLine(userID, variantID)
	if err != nil {
		// No existing line for this variant, start a new one.
		return s.cartRepo.Create(&models.CartItem{
			UserID:    userID,
			VariantID: variantID,
			Quantity:  quantity,
		})
	}

	if line.Quantity+quantity > variant.Stock {
		return ErrStockLimit
	}
	return s.cartRepo.UpdateQuantity(line.ID, line.Quantity+quantity)
}

// UpdateQuantity sets a cart line's quantity. A quantity below one removes
// the line; the returned bool reports whether it was removed.
func (s *CartService) UpdateQuantity(userID string, itemID string, quantity int) (bool, error) {
	line, err := s.cartRepo.GetLineByID(userID, itemID)
	if err != nil {
		return false, ErrCartItemNotFound
	}

	if quantity < 1 {
		if err := s.cartRepo.Delete(line.ID); err != nil {
			return false, err
		}
		return true, nil
	}

	if line.Variant != nil && quantity > line.Variant.Stock {
		return false, ErrInsufficientStock
	}
	if err := s.cartRepo.UpdateQuantity(line.ID, quantity); err != nil {
		return false, err
	}
	return false, nil
}

// RemoveItem deletes a cart line, guarded by owner.
func (s *CartService) RemoveItem(userID string, itemID string) error {
	line, err := s.cartRepo.GetLineByID(userID, itemID)
	if err != nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.Delete(line.ID)
}
