package organization

import (
	"fmt"
	"time"
)

// Role belongs to exactly one department. The pair (name, department) is
// unique regardless of case.
type Role struct {
	id           uint
	name         string
	departmentID uint
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRole(name string, departmentID uint, active bool) (*Role, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if departmentID == 0 {
		return nil, ErrDepartmentRequired
	}

	now := time.Now().UTC()
	return &Role{
		name:         name,
		departmentID: departmentID,
		active:       active,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRole(id uint, name string, departmentID uint, active bool, createdAt, updatedAt time.Time) *Role {
	return &Role{
		id:           id,
		name:         name,
		departmentID: departmentID,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Role) ID() uint             { return r.id }
func (r *Role) Name() string         { return r.name }
func (r *Role) DepartmentID() uint   { return r.departmentID }
func (r *Role) IsActive() bool       { return r.active }
func (r *Role) CreatedAt() time.Time { return r.createdAt }
func (r *Role) UpdatedAt() time.Time { return r.updatedAt }

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

// Update renames the role and moves it to another department.
func (r *Role) Update(name string, departmentID uint) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if departmentID == 0 {
		return ErrDepartmentRequired
	}
	r.name = name
	r.departmentID = departmentID
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Role) SetActive(active bool) {
	r.active = active
	r.updatedAt = time.Now().UTC()
}

func (r *Role) ToggleActive() bool {
	r.SetActive(!r.active)
	return r.active
}
