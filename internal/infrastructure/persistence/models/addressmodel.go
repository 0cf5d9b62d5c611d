package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type AddressModel struct {
	ID         uint    `gorm:"primarykey"`
	UserID     uint    `gorm:"not null;index"`
	HouseFlat  *string `gorm:"size:255"`
	Street     *string `gorm:"size:255"`
	Landmark   *string `gorm:"size:255"`
	Area       *string `gorm:"size:255"`
	District   *string `gorm:"size:100"`
	City       *string `gorm:"size:100"`
	State      *string `gorm:"size:100"`
	PostalCode *string `gorm:"size:20"`
	Country    string  `gorm:"not null;size:100;default:India"`
	CreatedAt  time.Time
}

func (AddressModel) TableName() string {
	return constants.TableAddresses
}
