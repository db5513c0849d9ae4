package commands

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrAddProductToOrderCommandIsNotConstructed = errors.New(
		"AddProductToOrderCommand must be created via NewAddProductToOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer placing a new order. The order
// starts in the "encargado" status and gets its number from the database.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(109870654, "Pastel de chocolate", deliveryAt)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	number, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  int64
	description string
	deliveryAt  time.Time

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(customerID int64, description string, deliveryAt time.Time) (PlaceOrderCommand, error) {
	if err := errors.Join(
		requireID("customer", customerID),
		requireText("description", description),
		requireDate("delivery date", deliveryAt),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		customerID:  customerID,
		description: description,
		deliveryAt:  deliveryAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() int64 {
	return c.customerID
}

func (c PlaceOrderCommand) Description() string {
	return c.description
}

func (c PlaceOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

// UpdateOrderStatusCommand moves an order to another status. The raw status is
// parsed here, so an unknown value never reaches a handler.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number int64
	status order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand returns an error wrapping order.ErrInvalidStatus
// when status is not one of "encargado", "elaborando" or "listo".
func NewUpdateOrderStatusCommand(number int64, status string) (UpdateOrderStatusCommand, error) {
	if err := requireID("order number", number); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{number: number, status: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Number() int64 {
	return c.number
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// AddProductToOrderCommand attaches a product line to an existing order.
type AddProductToOrderCommand struct { //nolint:recvcheck //using for validation
	number    int64
	productID int64
	quantity  int
	madeOn    time.Time

	guard guard.ConstructorGuard
}

func NewAddProductToOrderCommand(
	number, productID int64,
	quantity int,
	madeOn time.Time,
) (AddProductToOrderCommand, error) {
	if err := errors.Join(
		requireID("order number", number),
		requireID("product", productID),
		requireDate("preparation date", madeOn),
	); err != nil {
		return AddProductToOrderCommand{}, err
	}

	return AddProductToOrderCommand{
		number:    number,
		productID: productID,
		quantity:  quantity,
		madeOn:    madeOn,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddProductToOrderCommandIsNotConstructed)
}

func (c AddProductToOrderCommand) Number() int64 {
	return c.number
}

func (c AddProductToOrderCommand) ProductID() int64 {
	return c.productID
}

func (c AddProductToOrderCommand) Quantity() int {
	return c.quantity
}

func (c AddProductToOrderCommand) MadeOn() time.Time {
	return c.madeOn
}
