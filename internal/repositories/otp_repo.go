package repositories

import "jajis/internal/models"

// OTPRepository defines the interface for password reset OTP storage.
type OTPRepository interface {
	Create(otp *models.PasswordResetOTP) error
	GetByEmailAndCode(email string, code string) (*models.PasswordResetOTP, error)
	Delete(id string) error
}
