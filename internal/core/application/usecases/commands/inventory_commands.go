package commands

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var (
	ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
		"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
	)
	ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
		"UpdateInventoryItemCommand must be created via NewUpdateInventoryItemCommand constructor",
	)
	ErrDeleteInventoryItemCommandIsNotConstructed = errors.New(
		"DeleteInventoryItemCommand must be created via NewDeleteInventoryItemCommand constructor",
	)
	ErrItemIsBothIngredientAndMaterial = errors.New("an item cannot have both an expiration date and a material description")
)

// InventoryItemData describes one inventory line. Set ExpiresOn for an
// ingredient, Description and Color for a material, or neither.
type InventoryItemData struct {
	ID          int64
	Type        string
	Brand       string
	Name        string
	PurchasedOn time.Time
	Price       float64
	Quantity    int
	ExpiresOn   *time.Time
	Description string
	Color       string
}

func (d InventoryItemData) validate() error {
	err := errors.Join(
		requireID("id", d.ID),
		requireText("type", d.Type),
		requireText("brand", d.Brand),
		requireText("name", d.Name),
		requireDate("purchase date", d.PurchasedOn),
	)
	if d.ExpiresOn != nil && (d.Description != "" || d.Color != "") {
		err = errors.Join(err, ErrItemIsBothIngredientAndMaterial)
	}
	return err
}

// CreateInventoryItemCommand registers a new raw material line.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	item InventoryItemData

	guard guard.ConstructorGuard
}

func NewCreateInventoryItemCommand(item InventoryItemData) (CreateInventoryItemCommand, error) {
	if err := item.validate(); err != nil {
		return CreateInventoryItemCommand{}, err
	}
	return CreateInventoryItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

func (c CreateInventoryItemCommand) Item() InventoryItemData {
	return c.item
}

// UpdateInventoryItemCommand overwrites an existing line, including its variant.
type UpdateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	item InventoryItemData

	guard guard.ConstructorGuard
}

func NewUpdateInventoryItemCommand(item InventoryItemData) (UpdateInventoryItemCommand, error) {
	if err := item.validate(); err != nil {
		return UpdateInventoryItemCommand{}, err
	}
	return UpdateInventoryItemCommand{item: item, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}

func (c UpdateInventoryItemCommand) Item() InventoryItemData {
	return c.item
}

type DeleteInventoryItemCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteInventoryItemCommand(id int64) (DeleteInventoryItemCommand, error) {
	if err := requireID("id", id); err != nil {
		return DeleteInventoryItemCommand{}, err
	}
	return DeleteInventoryItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInventoryItemCommandIsNotConstructed)
}

func (c DeleteInventoryItemCommand) ID() int64 {
	return c.id
}
