package commands

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Command constructors only check that required input is present. Length and
// format rules belong to the domain constructors the handlers call.

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requireID(param string, id int64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError(param)
	}
	return kernel.RequirePositiveID(param, id)
}

func requireDate(param string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// PersonData is the personal information shared by employee and customer commands.
type PersonData struct {
	ID             int64
	FirstName      string
	FirstLastName  string
	SecondLastName string
	CityID         int64
	Directions     string
	BirthDate      time.Time
}

func (d PersonData) validate() error {
	return errors.Join(
		requireID("id", d.ID),
		requireText("first name", d.FirstName),
		requireText("first last name", d.FirstLastName),
		requireText("second last name", d.SecondLastName),
		requireID("city", d.CityID),
		requireText("directions", d.Directions),
		requireDate("birth date", d.BirthDate),
	)
}

func (d PersonData) toDomain() (kernel.Person, error) {
	name, err := kernel.NewPersonName(d.FirstName, d.FirstLastName, d.SecondLastName)
	if err != nil {
		return kernel.Person{}, err
	}
	address, err := kernel.NewAddress(d.CityID, d.Directions)
	if err != nil {
		return kernel.Person{}, err
	}
	return kernel.NewPerson(d.ID, name, address, d.BirthDate)
}
