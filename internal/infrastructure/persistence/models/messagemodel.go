package models

import "github.com/portalkit/portalkit/internal/shared/constants"

type UserErrorModel struct {
	ID           uint   `gorm:"primarykey"`
	ErrorCode    string `gorm:"not null;size:10;uniqueIndex"`
	ErrorMessage string `gorm:"not null;size:255"`
}

func (UserErrorModel) TableName() string {
	return constants.TableUserError
}

type UserValidationModel struct {
	ID                uint   `gorm:"primarykey"`
	ValidationCode    string `gorm:"not null;size:10;uniqueIndex"`
	ValidationMessage string `gorm:"not null;size:255"`
}

func (UserValidationModel) TableName() string {
	return constants.TableUserValidation
}

type UserInformationModel struct {
	ID              uint   `gorm:"primarykey"`
	InformationCode string `gorm:"not null;size:10;uniqueIndex"`
	InformationText string `gorm:"not null;size:255"`
}

func (UserInformationModel) TableName() string {
	return constants.TableUserInformation
}
