package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists customer orders, optionally narrowed to one customer
// and to one status.
type GetOrdersQuery struct {
	customerID *int64
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery takes zero for "any customer" and an empty string for
// "any status". A non-empty status must be one of the three known literals.
func NewGetOrdersQuery(customerID int64, status string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if customerID != 0 {
		if err := kernel.RequirePositiveID("customer", customerID); err != nil {
			return GetOrdersQuery{}, err
		}
		q.customerID = &customerID
	}

	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &parsed
	}

	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) CustomerID() (int64, bool) {
	if q.customerID == nil {
		return 0, false
	}
	return *q.customerID, true
}

func (q GetOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
