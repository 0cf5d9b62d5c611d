package organization

import (
	"fmt"
	"strings"
	"time"
)

const maxNameLength = 100

// Department groups roles and users. Names are unique regardless of case.
type Department struct {
	id        uint
	name      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name string, active bool) (*Department, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Department{
		name:      name,
		active:    active,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDepartment(id uint, name string, active bool, createdAt, updatedAt time.Time) *Department {
	return &Department{
		id:        id,
		name:      name,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) IsActive() bool       { return d.active }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Department) Rename(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	d.name = name
	d.updatedAt = time.Now().UTC()
	return nil
}

func (d *Department) SetActive(active bool) {
	d.active = active
	d.updatedAt = time.Now().UTC()
}

// ToggleActive flips the active flag and returns the new value.
func (d *Department) ToggleActive() bool {
	d.SetActive(!d.active)
	return d.active
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if len(name) > maxNameLength {
		return "", fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	return name, nil
}
