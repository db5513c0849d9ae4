package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a product added to an existing order, with the quantity ordered and
// the date the kitchen prepares it.
type Line struct {
	productID int64
	quantity  int
	madeOn    time.Time
	guard     guard.ConstructorGuard
}

func NewLine(productID int64, quantity int, madeOn time.Time) (Line, error) {
	l := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setProductID(productID),
		l.setQuantity(quantity),
		l.setMadeOn(madeOn),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() int64 {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) MadeOn() time.Time {
	return l.madeOn
}

func (l *Line) setProductID(productID int64) error {
	if err := kernel.RequirePositiveID("product id", productID); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setMadeOn(madeOn time.Time) error {
	if madeOn.IsZero() {
		return errs.NewValueIsRequiredError("preparation date")
	}
	l.madeOn = madeOn
	return nil
}
