// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repository it writes to.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	InventoryUoW interface {
		TxManager
		InventoryRepository() ports.InventoryRepository
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	SupplierUoW interface {
		TxManager
		SupplierRepository() ports.SupplierRepository
	}

	SupplierUoWFactory interface {
		Create() SupplierUoW
	}

	ProductUoW interface {
		TxManager
		ProductRepository() ports.ProductRepository
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// EmployeeUoW writes the person and employee rows of one employee atomically.
	EmployeeUoW interface {
		TxManager
		EmployeeRepository() ports.EmployeeRepository
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// CustomerUoW writes the person and customer rows of one customer atomically.
	CustomerUoW interface {
		TxManager
		CustomerRepository() ports.CustomerRepository
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// inTransaction begins uow, runs fn and commits. Rollback is deferred
// unconditionally; after a successful Commit it is a no-op.
func inTransaction[U TxManager](ctx context.Context, uow U, fn func(U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
