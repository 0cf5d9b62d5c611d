package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type OTPCodeModel struct {
	ID         uint      `gorm:"primarykey"`
	Email      string    `gorm:"not null;size:255;index:idx_otp_codes_email_code"`
	OTPCode    string    `gorm:"column:otp_code;not null;size:6;index:idx_otp_codes_email_code"`
	ExpiryTime time.Time `gorm:"not null;index"`
}

func (OTPCodeModel) TableName() string {
	return constants.TableOTPCodes
}
