// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries call the read-side stored functions directly and return flat read models.
package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrByIDQueryIsNotConstructed = errors.New(
	"ByIDQuery must be created via NewListQuery or NewByIDQuery constructor",
)

// ByIDQuery selects either every row of a listing or the single row with the
// given id. It serves the inventory, supplier, product, employee and customer
// listings, which all accept an optional id.
//
// Example:
//
//	query, err := NewByIDQuery(304560789)
//	if err != nil {
//	    return err
//	}
//	employees, err := employeesHandler.Handle(ctx, query)
type ByIDQuery struct {
	id *int64

	guard guard.ConstructorGuard
}

// NewListQuery selects every row.
func NewListQuery() ByIDQuery {
	return ByIDQuery{guard: guard.NewConstructorGuard()}
}

// NewByIDQuery selects one row. id must be positive.
func NewByIDQuery(id int64) (ByIDQuery, error) {
	if err := kernel.RequirePositiveID("id", id); err != nil {
		return ByIDQuery{}, err
	}
	return ByIDQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

func (q ByIDQuery) Validate() error {
	return q.guard.Validate(ErrByIDQueryIsNotConstructed)
}

// ID returns the selected id and false for a full listing.
func (q ByIDQuery) ID() (int64, bool) {
	if q.id == nil {
		return 0, false
	}
	return *q.id, true
}

// arg is the value bound to the stored function's optional id parameter.
func (q ByIDQuery) arg() any {
	if q.id == nil {
		return nil
	}
	return *q.id
}
