package models

import (
	"time"

	"github.com/portalkit/portalkit/internal/shared/constants"
)

type DepartmentModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"column:department_name;not null;size:100"`
	NameKey   string `gorm:"not null;size:100;uniqueIndex:idx_departments_name_key"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}

type RoleModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"column:role_name;not null;size:100"`
	NameKey      string `gorm:"not null;size:100;uniqueIndex:idx_roles_name_department"`
	DepartmentID uint   `gorm:"not null;uniqueIndex:idx_roles_name_department"`
	IsActive     bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
