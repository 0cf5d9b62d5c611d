package address

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultCountry = "India"

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrOwnerRequired   = errors.New("address owner is required")
)

// Fields is the editable part of an address. Every line is optional.
type Fields struct {
	HouseFlat  *string
	Street     *string
	Landmark   *string
	Area       *string
	District   *string
	City       *string
	State      *string
	PostalCode *string
	Country    string
}

// Address is a postal address owned by one user.
type Address struct {
	id        uint
	userID    uint
	fields    Fields
	createdAt time.Time
}

func NewAddress(userID uint, f Fields) (*Address, error) {
	if userID == 0 {
		return nil, ErrOwnerRequired
	}
	a := &Address{userID: userID, createdAt: time.Now().UTC()}
	a.Update(f)
	return a, nil
}

func ReconstructAddress(id, userID uint, f Fields, createdAt time.Time) *Address {
	return &Address{id: id, userID: userID, fields: f, createdAt: createdAt}
}

func (a *Address) ID() uint             { return a.id }
func (a *Address) UserID() uint         { return a.userID }
func (a *Address) Fields() Fields       { return a.fields }
func (a *Address) CreatedAt() time.Time { return a.createdAt }

func (a *Address) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("address ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("address ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces all lines. Blank lines are stored as null and a blank
// country becomes DefaultCountry.
func (a *Address) Update(f Fields) {
	f.HouseFlat = clean(f.HouseFlat)
	f.Street = clean(f.Street)
	f.Landmark = clean(f.Landmark)
	f.Area = clean(f.Area)
	f.District = clean(f.District)
	f.City = clean(f.City)
	f.State = clean(f.State)
	f.PostalCode = clean(f.PostalCode)
	f.Country = strings.TrimSpace(f.Country)
	if f.Country == "" {
		f.Country = DefaultCountry
	}
	a.fields = f
}

// OwnedBy reports whether userID owns the address.
func (a *Address) OwnedBy(userID uint) bool {
	return a.userID == userID
}

// String renders the non-empty lines in postal order.
func (a *Address) String() string {
	var parts []string
	for _, p := range []*string{a.fields.HouseFlat, a.fields.Street, a.fields.City, a.fields.State, a.fields.PostalCode} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}

func clean(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
