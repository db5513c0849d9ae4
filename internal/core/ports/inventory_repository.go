// Package ports defines the repository interfaces of the bakery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for inventory lines,
// including their ingredient or material variant.
type InventoryRepository interface {
	// Add stores a new line. Returns an ObjectAlreadyExistsError if the id is taken.
	Add(ctx context.Context, item *inventory.Item) error

	// Update overwrites a stored line and its variant.
	// Returns an ObjectNotFoundError if the id does not exist.
	Update(ctx context.Context, item *inventory.Item) error

	// Delete removes a line and its variant.
	// Returns an ObjectNotFoundError if the id does not exist.
	Delete(ctx context.Context, id int64) error
}
