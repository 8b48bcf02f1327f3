package repositories

import (
	"fmt"
	"jajis/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTxRunner is a GORM implementation of TxRunner backed by
// database transactions.
type GORMTxRunner struct {
	db *gorm.DB
}

// NewGORMTxRunner creates a new instance of GORMTxRunner.
func NewGORMTxRunner(db *gorm.DB) *GORMTxRunner {
	return &GORMTxRunner{
		db: db,
	}
}

// RunInTransaction runs fn against a CheckoutStore bound to one database
// transaction. Any error from fn rolls the whole unit back.
func (r *GORMTxRunner) RunInTransaction(fn func(store CheckoutStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutStore{db: tx})
	})
}

// gormCheckoutStore implements CheckoutStore against a single *gorm.DB
// transaction handle.
type gormCheckoutStore struct {
	db *gorm.DB
}

func (s *gormCheckoutStore) GetCartItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Variant").Where("user_id = ?", userID).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	return items, nil
}

func (s *gormCheckoutStore) GetVariantByID(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := s.db.First(&variant, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("variant with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get variant by ID %s: %w", id, err)
	}
	return &variant, nil
}

func (s *gormCheckoutStore) CreateOrder(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *gormCheckoutStore) CreateOrderItem(item *models.OrderItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}
	return nil
}

func (s *gormCheckoutStore) UpdateVariantStock(variantID string, stock int) error {
	res := s.db.Model(&models.ProductVariant{}).Where("id = ?", variantID).Update("stock", stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update variant stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("variant with ID %s not found for stock update", variantID)
	}
	return nil
}

func (s *gormCheckoutStore) DeleteCartItem(itemID string) error {
	if err := s.db.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (s *gormCheckoutStore) UpdateTransaction(tx *models.PaymentTransaction) error {
	if err := s.db.Save(tx).Error; err != nil {
		return fmt.Errorf("failed to update payment transaction: %w", err)
	}
	return nil
}
