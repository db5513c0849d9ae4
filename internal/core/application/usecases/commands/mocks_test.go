package commands_test

import (
	"context"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/employee"
	"bakery/internal/core/domain/model/inventory"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/supplier"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockInventoryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEmployeeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) AddLine(ctx context.Context, number int64, line order.Line) error {
	return m.Called(ctx, number, line).Error(0)
}

// MockUoW satisfies every per-aggregate unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}
func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	return m.Called().Get(0).(ports.EmployeeRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

// MockUoWFactory[commands.OrderUoW] implements commands.OrderUoWFactory, and
// so on for the other aggregates.
type MockUoWFactory[U any] struct{ mock.Mock }

func (m *MockUoWFactory[U]) Create() U {
	return m.Called().Get(0).(U)
}
