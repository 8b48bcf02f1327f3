package repositories

import (
	"fmt"
	"jajis/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOTPRepository is a GORM implementation of OTPRepository.
type GORMOTPRepository struct {
	db *gorm.DB
}

// NewGORMOTPRepository creates a new instance of GORMOTPRepository.
func NewGORMOTPRepository(db *gorm.DB) *GORMOTPRepository {
	return &GORMOTPRepository{
		db: db,
	}
}

// Create stores a new password reset OTP.
func (r *GORMOTPRepository) Create(otp *models.PasswordResetOTP) error {
	if otp.ID == "" {
		otp.ID = uuid.New().String()
	}
	if err := r.db.Create(otp).Error; err != nil {
		return fmt.Errorf("failed to create password reset OTP: %w", err)
	}
	return nil
}

// GetByEmailAndCode retrieves the OTP row matching an email and code.
func (r *GORMOTPRepository) GetByEmailAndCode(email string, code string) (*models.PasswordResetOTP, error) {
	var otp models.PasswordResetOTP
	err := r.db.First(&otp, "email = ? AND otp = ?", email, code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("OTP for email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get OTP: %w", err)
	}
	return &otp, nil
}

// Delete removes an OTP row by ID.
func (r *GORMOTPRepository) Delete(id string) error {
	if err := r.db.Delete(&models.PasswordResetOTP{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
