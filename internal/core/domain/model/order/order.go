package order

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// MaxDescriptionLength bounds the free-text order description.
const MaxDescriptionLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's request for baked goods to be delivered at a given time.
//
// Order follows these invariants:
//   - The customer id is a positive national id
//   - The description is present and at most 500 characters
//   - The delivery date is set
//   - The status is always Placed, InPreparation or Ready
type Order struct {
	// number is assigned by the database; zero until the order is stored
	number int64

	customerID  int64
	description string
	deliveryAt  time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Placed status for the given customer.
//
// Example:
//
//	o, err := order.NewOrder(118490321, "Pastel de tres leches, 20 porciones", deliveryAt)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID int64, description string, deliveryAt time.Time) (*Order, error) {
	o := &Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setDescription(description),
		o.setDeliveryAt(deliveryAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order. It applies the same checks as NewOrder
// plus a positive order number and a valid status.
func RestoreOrder(number, customerID int64, description string, deliveryAt time.Time, status Status) (*Order, error) {
	o, err := NewOrder(customerID, description, deliveryAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		kernel.RequirePositiveID("order number", number),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.number = number
	o.status = status
	return o, nil
}

// Validate ensures the Order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Number returns the order number, or 0 if the order has not been stored yet.
func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) CustomerID() int64 {
	return o.customerID
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) DeliveryAt() time.Time {
	return o.deliveryAt
}

func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus records a new status. Any valid status is accepted from any
// other, including the current one.
//
// Returns an error wrapping ErrInvalidStatus if status is not one of the
// three known values; the order is left unchanged in that case.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if err := kernel.RequirePositiveID("customer id", customerID); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDescription(description string) (err error) {
	o.description, err = kernel.RequireText("description", description, MaxDescriptionLength)
	return err
}

func (o *Order) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	o.deliveryAt = deliveryAt
	return nil
}
