package dto

import (
	"github.com/portalkit/portalkit/internal/domain/address"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/mapper"
)

// Actor is the signed-in user. ManageOthers is set when the route policy
// lets them act on other users' addresses.
type Actor struct {
	UserID       uint
	ManageOthers bool
}

type AddressRequest struct {
	User       *uint   `json:"user"`
	HouseFlat  *string `json:"house_flat"`
	Street     *string `json:"street"`
	Landmark   *string `json:"landmark"`
	Area       *string `json:"area"`
	District   *string `json:"district"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

type AddressDTO struct {
	ID         uint    `json:"id"`
	User       uint    `json:"user"`
	HouseFlat  *string `json:"house_flat"`
	Street     *string `json:"street"`
	Landmark   *string `json:"landmark"`
	Area       *string `json:"area"`
	District   *string `json:"district"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    string  `json:"country"`
	Display    string  `json:"display"`
	CreatedAt  *string `json:"created_at"`
}

// Fields converts the request; with base set, absent fields keep base's
// values.
func (r AddressRequest) Fields(base *address.Fields) address.Fields {
	var f address.Fields
	if base != nil {
		f = *base
	}
	pick := func(dst **string, src *string) {
		if src != nil || base == nil {
			*dst = src
		}
	}
	pick(&f.HouseFlat, r.HouseFlat)
	pick(&f.Street, r.Street)
	pick(&f.Landmark, r.Landmark)
	pick(&f.Area, r.Area)
	pick(&f.District, r.District)
	pick(&f.City, r.City)
	pick(&f.State, r.State)
	pick(&f.PostalCode, r.PostalCode)
	if r.Country != nil {
		f.Country = *r.Country
	} else if base == nil {
		f.Country = ""
	}
	return f
}

func ToAddressDTO(a *address.Address) *AddressDTO {
	f := a.Fields()
	created := a.CreatedAt()
	return &AddressDTO{
		ID:         a.ID(),
		User:       a.UserID(),
		HouseFlat:  f.HouseFlat,
		Street:     f.Street,
		Landmark:   f.Landmark,
		Area:       f.Area,
		District:   f.District,
		City:       f.City,
		State:      f.State,
		PostalCode: f.PostalCode,
		Country:    f.Country,
		Display:    a.String(),
		CreatedAt:  biztime.FormatISO(&created),
	}
}

func ToAddressDTOs(as []*address.Address) []*AddressDTO {
	return mapper.MapSlicePtr(as, ToAddressDTO)
}
