// Package employee models bakery staff. An employee is a person with a
// specialty and an academic degree; an existing employee id is also what
// authorizes inventory and supplier changes.
package employee

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

const (
	MaxSpecialtyLength = 50
	MaxDegreeLength    = 100
)

var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

type Employee struct {
	person    kernel.Person
	specialty string
	degree    string
	guard     guard.ConstructorGuard
}

func NewEmployee(person kernel.Person, specialty, degree string) (*Employee, error) {
	e := &Employee{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setPerson(person),
		e.setSpecialty(specialty),
		e.setDegree(degree),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID is the employee's national id.
func (e *Employee) ID() int64 {
	return e.person.ID()
}

func (e *Employee) Person() kernel.Person {
	return e.person
}

func (e *Employee) Specialty() string {
	return e.specialty
}

func (e *Employee) Degree() string {
	return e.degree
}

func (e *Employee) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	e.person = person
	return nil
}

func (e *Employee) setSpecialty(specialty string) (err error) {
	e.specialty, err = kernel.RequireText("specialty", specialty, MaxSpecialtyLength)
	return err
}

func (e *Employee) setDegree(degree string) (err error) {
	e.degree, err = kernel.RequireText("academic degree", degree, MaxDegreeLength)
	return err
}
