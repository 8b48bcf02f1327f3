package models

import "time"

// PasswordResetOTP is a short-lived one-time code mailed to a user who
// requested a password reset.
type PasswordResetOTP struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"index;type:varchar(255)" validate:"required,email"`
	OTP       string    `json:"-" gorm:"type:varchar(6)"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the code is past its expiry.
func (o *PasswordResetOTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}
