package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for customer orders.
type OrderRepository interface {
	// Add stores a new order and returns the number the database assigned to it.
	// Returns an ObjectNotFoundError if the customer does not exist.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Get retrieves an order by its number.
	// Returns an ObjectNotFoundError if there is no such order.
	Get(ctx context.Context, number int64) (*order.Order, error)

	// UpdateStatus persists the current status of a stored order.
	// Only the status is written; the other fields are immutable once placed.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// AddLine attaches a product line to the order with the given number.
	// Returns an ObjectNotFoundError if the order or the product is missing and an
	// ObjectAlreadyExistsError if the product is already on the order.
	AddLine(ctx context.Context, number int64, line order.Line) error
}
