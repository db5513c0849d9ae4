// Package customer models the people who place orders with the bakery.
package customer

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	person   kernel.Person
	frequent bool
	guard    guard.ConstructorGuard
}

func NewCustomer(person kernel.Person, frequent bool) (*Customer, error) {
	if err := person.Validate(); err != nil {
		return nil, err
	}
	return &Customer{person: person, frequent: frequent, guard: guard.NewConstructorGuard()}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID is the customer's national id.
func (c *Customer) ID() int64 {
	return c.person.ID()
}

func (c *Customer) Person() kernel.Person {
	return c.person
}

// IsFrequent reports whether the customer gets frequent-customer treatment.
func (c *Customer) IsFrequent() bool {
	return c.frequent
}

// FrequentFlag is the 0/1 form the database stores.
func (c *Customer) FrequentFlag() int16 {
	if c.frequent {
		return 1
	}
	return 0
}
