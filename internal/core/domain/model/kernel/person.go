package kernel

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	MinNameLength = 2
	MaxNameLength = 15
)

var (
	ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError("person name must be created via NewPersonName")
	ErrPersonIsNotConstructed     = errs.NewValueIsRequiredError("person must be created via NewPerson")
)

// PersonName is a first name and two last names, each 2..15 letters.
type PersonName struct {
	first string
	last1 string
	last2 string
	guard guard.ConstructorGuard
}

func NewPersonName(first, last1, last2 string) (PersonName, error) {
	var (
		name PersonName
		errF error
		err1 error
		err2 error
	)
	name.first, errF = requireName("first name", first, MaxNameLength)
	name.last1, err1 = requireName("first last name", last1, MaxNameLength)
	name.last2, err2 = requireName("second last name", last2, MaxNameLength)

	if err := errors.Join(errF, err1, err2); err != nil {
		return PersonName{}, err
	}

	name.guard = guard.NewConstructorGuard()
	return name, nil
}

func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

func (n PersonName) First() string {
	return n.first
}

func (n PersonName) FirstLastName() string {
	return n.last1
}

func (n PersonName) SecondLastName() string {
	return n.last2
}

// String renders the full name the way receipts print it.
func (n PersonName) String() string {
	return n.first + " " + n.last1 + " " + n.last2
}

// Person carries what employees and customers share. The id is the national
// identity number (cédula) and doubles as the primary key.
type Person struct {
	id        int64
	name      PersonName
	address   Address
	birthDate time.Time
	guard     guard.ConstructorGuard
}

func NewPerson(id int64, name PersonName, address Address, birthDate time.Time) (Person, error) {
	p := Person{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setAddress(address),
		p.setBirthDate(birthDate),
	); err != nil {
		return Person{}, err
	}

	return p, nil
}

func (p Person) Validate() error {
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

func (p Person) ID() int64 {
	return p.id
}

func (p Person) Name() PersonName {
	return p.name
}

func (p Person) Address() Address {
	return p.address
}

func (p Person) BirthDate() time.Time {
	return p.birthDate
}

func (p *Person) setID(id int64) error {
	if err := RequirePositiveID("id", id); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setName(name PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Person) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Person) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.NewValueIsRequiredError("birth date")
	}
	p.birthDate = birthDate
	return nil
}
