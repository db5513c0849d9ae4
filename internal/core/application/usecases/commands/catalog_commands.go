package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var (
	ErrSaveSupplierCommandIsNotConstructed = errors.New(
		"SaveSupplierCommand must be created via NewSaveSupplierCommand constructor",
	)
	ErrSaveProductCommandIsNotConstructed = errors.New(
		"SaveProductCommand must be created via NewSaveProductCommand constructor",
	)
	ErrDeleteByIDCommandIsNotConstructed = errors.New(
		"DeleteByIDCommand must be created via NewDeleteByIDCommand constructor",
	)
)

// SupplierData is the input of the supplier create and update operations.
type SupplierData struct {
	ID         int64
	Name       string
	CityID     int64
	Directions string
}

// SaveSupplierCommand carries a supplier for either creation or update; the
// handler decides which.
type SaveSupplierCommand struct { //nolint:recvcheck //using for validation
	supplier SupplierData

	guard guard.ConstructorGuard
}

func NewSaveSupplierCommand(s SupplierData) (SaveSupplierCommand, error) {
	if err := errors.Join(
		requireID("id", s.ID),
		requireText("name", s.Name),
		requireID("city", s.CityID),
		requireText("directions", s.Directions),
	); err != nil {
		return SaveSupplierCommand{}, err
	}
	return SaveSupplierCommand{supplier: s, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveSupplierCommand) Validate() error {
	return c.guard.Validate(ErrSaveSupplierCommandIsNotConstructed)
}

func (c SaveSupplierCommand) Supplier() SupplierData {
	return c.supplier
}

// SaveProductCommand carries a product for creation or update.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	id          int64
	productType string

	guard guard.ConstructorGuard
}

func NewSaveProductCommand(id int64, productType string) (SaveProductCommand, error) {
	if err := errors.Join(
		requireID("id", id),
		requireText("type", productType),
	); err != nil {
		return SaveProductCommand{}, err
	}
	return SaveProductCommand{id: id, productType: productType, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

func (c SaveProductCommand) ID() int64 {
	return c.id
}

func (c SaveProductCommand) Type() string {
	return c.productType
}

// DeleteByIDCommand removes a supplier, product, employee or customer. Which
// one depends on the handler it is given to.
type DeleteByIDCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteByIDCommand(id int64) (DeleteByIDCommand, error) {
	if err := requireID("id", id); err != nil {
		return DeleteByIDCommand{}, err
	}
	return DeleteByIDCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteByIDCommand) Validate() error {
	return c.guard.Validate(ErrDeleteByIDCommandIsNotConstructed)
}

func (c DeleteByIDCommand) ID() int64 {
	return c.id
}
