package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type PermissionModel struct {
	ID          uint   `gorm:"primarykey"`
	Codename    string `gorm:"not null;size:100;uniqueIndex:idx_permissions_codename"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}

type UserPermissionOverrideModel struct {
	ID           uint `gorm:"primarykey"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_user_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_user_permission"`
	IsAllowed    bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserPermissionOverrideModel) TableName() string {
	return constants.TableUserPermissionOverrides
}

type RolePermissionModel struct {
	ID           uint `gorm:"primarykey"`
	RoleID       uint `gorm:"not null;uniqueIndex:idx_role_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_role_permission"`
	IsAllowed    bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (RolePermissionModel) TableName() string {
	return constants.TableRolePermissions
}

type DepartmentPermissionModel struct {
	ID           uint `gorm:"primarykey"`
	DepartmentID uint `gorm:"not null;uniqueIndex:idx_department_permission"`
	PermissionID uint `gorm:"not null;uniqueIndex:idx_department_permission"`
	CreatedAt    time.Time
}

func (DepartmentPermissionModel) TableName() string {
	return constants.TableDepartmentPermissions
}

// CodenameGrantRow is the projection used by the bulk permission queries.
type CodenameGrantRow struct {
	Codename  string
	IsAllowed bool
}
