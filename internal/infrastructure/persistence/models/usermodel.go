package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

// UserModel keeps folded copies of username and email so lookups ignore case
// without relying on the database collation.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Username     string  `gorm:"not null;size:150"`
	UsernameKey  string  `gorm:"not null;size:150;uniqueIndex:idx_users_username_key"`
	Email        string  `gorm:"not null;size:254"`
	EmailKey     string  `gorm:"not null;size:254;index:idx_users_email_key"`
	Phone        *string `gorm:"size:15"`
	FirstName    string  `gorm:"size:150"`
	LastName     string  `gorm:"size:150"`
	PasswordHash string  `gorm:"size:255"`
	DepartmentID *uint   `gorm:"index"`
	RoleID       *uint   `gorm:"index"`
	IsActive     bool    `gorm:"not null"`
	IsStaff      bool    `gorm:"not null;default:false"`
	IsSuperuser  bool    `gorm:"not null;default:false"`
	DateJoined   time.Time
	LastLogin    *time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
