package kernel

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// MaxDirectionsLength bounds the free-text part of an address.
const MaxDirectionsLength = 200

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address locates a person or supplier: a city from the city catalogue plus
// directions ("200m north of the church").
type Address struct {
	cityID     int64
	directions string
	guard      guard.ConstructorGuard
}

// NewAddress validates the city id and directions.
func NewAddress(cityID int64, directions string) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(addr.setCityID(cityID), addr.setDirections(directions)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) CityID() int64 {
	return a.cityID
}

func (a Address) Directions() string {
	return a.directions
}

func (a *Address) setCityID(cityID int64) error {
	if err := RequirePositiveID("city", cityID); err != nil {
		return err
	}
	a.cityID = cityID
	return nil
}

func (a *Address) setDirections(directions string) error {
	value, err := RequireText("directions", directions, MaxDirectionsLength)
	if err != nil {
		return err
	}
	a.directions = value
	return nil
}
