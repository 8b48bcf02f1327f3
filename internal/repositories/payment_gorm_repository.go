package repositories

import (
	"fmt"
	"jajis/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentTransactionRepository is a GORM implementation of
// PaymentTransactionRepository.
type GORMPaymentTransactionRepository struct {
	db *gorm.DB
}

// NewGORMPaymentTransactionRepository creates a new instance of
// GORMPaymentTransactionRepository.
func NewGORMPaymentTransactionRepository(db *gorm.DB) *GORMPaymentTransactionRepository {
	return &GORMPaymentTransactionRepository{
		db: db,
	}
}

// GetByGatewayOrderID looks up a user's transaction by gateway order id.
func (r *GORMPaymentTransactionRepository) GetByGatewayOrderID(userID string, gatewayOrderID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.First(&tx, "user_id = ? AND gateway_order_id = ?", userID, gatewayOrderID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("payment transaction for order %s not found", gatewayOrderID)
		}
		return nil, fmt.Errorf("failed to get payment transaction: %w", err)
	}
	return &tx, nil
}

// ReplacePending deletes the user's prior "created" transactions and inserts
// the new one in a single database transaction.
func (r *GORMPaymentTransactionRepository) ReplacePending(tx *models.PaymentTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Delete(&models.PaymentTransaction{},
			"user_id = ? AND status = ?", tx.UserID, models.TxStatusCreated).Error; err != nil {
			return err
		}
		return dbtx.Create(tx).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace pending transaction: %w", err)
	}
	return nil
}

// Update persists the full transaction row.
func (r *GORMPaymentTransactionRepository) Update(tx *models.PaymentTransaction) error {
	res := r.db.Save(tx)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment transaction with ID %s not found for update", tx.ID)
	}
	return nil
}
