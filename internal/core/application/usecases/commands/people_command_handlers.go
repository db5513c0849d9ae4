package commands

import (
	"context"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/employee"
)

// EmployeeCommandHandler maintains employees. Each write touches the person
// and the employee tables, so it always runs inside one unit of work.
type EmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewEmployeeCommandHandler(uowFactory EmployeeUoWFactory) EmployeeCommandHandler {
	return EmployeeCommandHandler{uowFactory: uowFactory}
}

func (h *EmployeeCommandHandler) Create(ctx context.Context, cmd SaveEmployeeCommand) error {
	return h.save(ctx, cmd, false)
}

func (h *EmployeeCommandHandler) Update(ctx context.Context, cmd SaveEmployeeCommand) error {
	return h.save(ctx, cmd, true)
}

func (h *EmployeeCommandHandler) Delete(ctx context.Context, cmd DeleteByIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow EmployeeUoW) error {
		return uow.EmployeeRepository().Delete(ctx, cmd.ID())
	})
}

func (h *EmployeeCommandHandler) save(ctx context.Context, cmd SaveEmployeeCommand, update bool) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := cmd.Person().toDomain()
	if err != nil {
		return err
	}
	e, err := employee.NewEmployee(person, cmd.Specialty(), cmd.Degree())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow EmployeeUoW) error {
		if update {
			return uow.EmployeeRepository().Update(ctx, e)
		}
		return uow.EmployeeRepository().Add(ctx, e)
	})
}

// CustomerCommandHandler maintains customers.
type CustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCustomerCommandHandler(uowFactory CustomerUoWFactory) CustomerCommandHandler {
	return CustomerCommandHandler{uowFactory: uowFactory}
}

func (h *CustomerCommandHandler) Create(ctx context.Context, cmd SaveCustomerCommand) error {
	return h.save(ctx, cmd, false)
}

func (h *CustomerCommandHandler) Update(ctx context.Context, cmd SaveCustomerCommand) error {
	return h.save(ctx, cmd, true)
}

// Delete fails with an ObjectIsReferencedError while the customer has orders.
func (h *CustomerCommandHandler) Delete(ctx context.Context, cmd DeleteByIDCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow CustomerUoW) error {
		return uow.CustomerRepository().Delete(ctx, cmd.ID())
	})
}

func (h *CustomerCommandHandler) save(ctx context.Context, cmd SaveCustomerCommand, update bool) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	person, err := cmd.Person().toDomain()
	if err != nil {
		return err
	}
	c, err := customer.NewCustomer(person, cmd.IsFrequent())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow CustomerUoW) error {
		if update {
			return uow.CustomerRepository().Update(ctx, c)
		}
		return uow.CustomerRepository().Add(ctx, c)
	})
}
