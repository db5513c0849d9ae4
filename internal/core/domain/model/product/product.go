// Package product models the items the bakery sells and that orders refer to.
package product

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

const MaxTypeLength = 100

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalogue entry such as "pan baguette" or "pastel de bodas".
type Product struct {
	id          int64
	productType string
	guard       guard.ConstructorGuard
}

func NewProduct(id int64, productType string) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setID(id), p.setType(productType)); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Type() string {
	return p.productType
}

func (p *Product) setID(id int64) error {
	if err := kernel.RequirePositiveID("id", id); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setType(productType string) (err error) {
	p.productType, err = kernel.RequireText("type", productType, MaxTypeLength)
	return err
}
