package inventory

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	MaxTypeLength        = 100
	MaxBrandLength       = 20
	MaxNameLength        = 30
	MaxDescriptionLength = 200
	MaxColorLength       = 30
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	ErrVariantAlreadySet    = errors.New("item is already an ingredient or a material")
)

// Kind tells which variant of raw material an Item is.
type Kind int

const (
	Generic Kind = iota
	Ingredient
	Material
)

func (k Kind) String() string {
	switch k {
	case Ingredient:
		return "ingredient"
	case Material:
		return "material"
	default:
		return "generic"
	}
}

// Item is one inventory line. Ingredients carry an expiration date; materials
// (boxes, ribbons, molds) carry a description and a color.
type Item struct {
	id          int64
	itemType    string
	brand       string
	name        string
	purchasedOn time.Time
	price       float64
	quantity    int

	kind        Kind
	expiresOn   *time.Time
	description string
	color       string

	guard guard.ConstructorGuard
}

// NewItem builds a generic inventory line. Call MarkAsIngredient or
// MarkAsMaterial right after to specialise it.
func NewItem(
	id int64,
	itemType, brand, name string,
	purchasedOn time.Time,
	price float64,
	quantity int,
) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setType(itemType),
		item.setBrand(brand),
		item.setName(name),
		item.setPurchasedOn(purchasedOn),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// MarkAsIngredient turns a generic line into an ingredient that expires on expiresOn.
func (i *Item) MarkAsIngredient(expiresOn time.Time) error {
	if i.kind != Generic {
		return ErrVariantAlreadySet
	}
	if expiresOn.IsZero() {
		return errs.NewValueIsRequiredError("expiration date")
	}
	i.expiresOn = &expiresOn
	i.kind = Ingredient
	return nil
}

// MarkAsMaterial turns a generic line into a material.
func (i *Item) MarkAsMaterial(description, color string) error {
	if i.kind != Generic {
		return ErrVariantAlreadySet
	}
	d, errD := kernel.RequireText("description", description, MaxDescriptionLength)
	c, errC := kernel.RequireText("color", color, MaxColorLength)
	if err := errors.Join(errD, errC); err != nil {
		return err
	}
	i.description = d
	i.color = c
	i.kind = Material
	return nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) Type() string {
	return i.itemType
}

func (i *Item) Brand() string {
	return i.brand
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) PurchasedOn() time.Time {
	return i.purchasedOn
}

func (i *Item) Price() float64 {
	return i.price
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Kind() Kind {
	return i.kind
}

// ExpiresOn is nil unless the item is an ingredient.
func (i *Item) ExpiresOn() *time.Time {
	return i.expiresOn
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Color() string {
	return i.color
}

func (i *Item) setID(id int64) error {
	if err := kernel.RequirePositiveID("id", id); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setType(itemType string) (err error) {
	i.itemType, err = kernel.RequireText("type", itemType, MaxTypeLength)
	return err
}

func (i *Item) setBrand(brand string) (err error) {
	i.brand, err = kernel.RequireText("brand", brand, MaxBrandLength)
	return err
}

func (i *Item) setName(name string) (err error) {
	i.name, err = kernel.RequireText("name", name, MaxNameLength)
	return err
}

func (i *Item) setPurchasedOn(purchasedOn time.Time) error {
	if purchasedOn.IsZero() {
		return errs.NewValueIsRequiredError("purchase date")
	}
	i.purchasedOn = purchasedOn
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%.2f is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}
