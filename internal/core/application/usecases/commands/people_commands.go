package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var (
	ErrSaveEmployeeCommandIsNotConstructed = errors.New(
		"SaveEmployeeCommand must be created via NewSaveEmployeeCommand constructor",
	)
	ErrSaveCustomerCommandIsNotConstructed = errors.New(
		"SaveCustomerCommand must be created via NewSaveCustomerCommand constructor",
	)
)

// SaveEmployeeCommand registers or updates an employee together with the
// person record behind it.
type SaveEmployeeCommand struct { //nolint:recvcheck //using for validation
	person    PersonData
	specialty string
	degree    string

	guard guard.ConstructorGuard
}

func NewSaveEmployeeCommand(person PersonData, specialty, degree string) (SaveEmployeeCommand, error) {
	if err := errors.Join(
		person.validate(),
		requireText("specialty", specialty),
		requireText("degree", degree),
	); err != nil {
		return SaveEmployeeCommand{}, err
	}

	return SaveEmployeeCommand{
		person:    person,
		specialty: specialty,
		degree:    degree,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SaveEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrSaveEmployeeCommandIsNotConstructed)
}

func (c SaveEmployeeCommand) Person() PersonData {
	return c.person
}

func (c SaveEmployeeCommand) Specialty() string {
	return c.specialty
}

func (c SaveEmployeeCommand) Degree() string {
	return c.degree
}

// SaveCustomerCommand registers or updates a customer.
type SaveCustomerCommand struct { //nolint:recvcheck //using for validation
	person   PersonData
	frequent bool

	guard guard.ConstructorGuard
}

func NewSaveCustomerCommand(person PersonData, frequent bool) (SaveCustomerCommand, error) {
	if err := person.validate(); err != nil {
		return SaveCustomerCommand{}, err
	}
	return SaveCustomerCommand{person: person, frequent: frequent, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

func (c SaveCustomerCommand) Person() PersonData {
	return c.person
}

func (c SaveCustomerCommand) IsFrequent() bool {
	return c.frequent
}
