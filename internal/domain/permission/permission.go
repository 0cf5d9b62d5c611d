package permission

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxCodenameLength = 100
	maxNameLength     = 255
)

// Permission is a named capability identified by its unique codename.
type Permission struct {
	id          uint
	codename    string
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPermission(codename, name, description string) (*Permission, error) {
	p := &Permission{}
	if err := p.Update(codename, name, description); err != nil {
		return nil, err
	}
	p.createdAt = p.updatedAt
	return p, nil
}

func ReconstructPermission(id uint, codename, name, description string, createdAt, updatedAt time.Time) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}

	return &Permission{
		id:          id,
		codename:    codename,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Permission) ID() uint {
	return p.id
}

func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Permission) Codename() string {
	return p.codename
}

func (p *Permission) Name() string {
	return p.name
}

func (p *Permission) Description() string {
	return p.description
}

func (p *Permission) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permission) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces all mutable fields after validating them.
func (p *Permission) Update(codename, name, description string) error {
	codename = strings.TrimSpace(codename)
	name = strings.TrimSpace(name)

	if codename == "" {
		return ErrCodenameRequired
	}
	if len(codename) > maxCodenameLength {
		return fmt.Errorf("codename too long (max %d characters)", maxCodenameLength)
	}
	if name == "" {
		return fmt.Errorf("permission name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("permission name too long (max %d characters)", maxNameLength)
	}

	p.codename = codename
	p.name = name
	p.description = description
	p.updatedAt = time.Now().UTC()
	return nil
}
