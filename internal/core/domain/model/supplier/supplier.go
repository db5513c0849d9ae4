// Package supplier models the companies the bakery buys raw materials from.
package supplier

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

const MaxNameLength = 30

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

type Supplier struct {
	id      int64
	name    string
	address kernel.Address
	guard   guard.ConstructorGuard
}

func NewSupplier(id int64, name string, address kernel.Address) (*Supplier, error) {
	s := &Supplier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

func (s *Supplier) ID() int64 {
	return s.id
}

func (s *Supplier) Name() string {
	return s.name
}

func (s *Supplier) Address() kernel.Address {
	return s.address
}

func (s *Supplier) setID(id int64) error {
	if err := kernel.RequirePositiveID("id", id); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) (err error) {
	s.name, err = kernel.RequireText("supplier name", name, MaxNameLength)
	return err
}

func (s *Supplier) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}
