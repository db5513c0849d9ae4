package ports

import (
	"context"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/employee"
)

// EmployeeRepository defines the persistence contract for employees. Add and
// Update write the shared person record and the employee record together, so
// callers must run them inside a unit of work.
type EmployeeRepository interface {
	Add(ctx context.Context, e *employee.Employee) error
	Update(ctx context.Context, e *employee.Employee) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository defines the persistence contract for customers. Like
// EmployeeRepository it writes the person record and the customer record together.
//
// Delete returns an ObjectIsReferencedError while the customer has orders.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id int64) error
}
