package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/core/domain/model/employee"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCommitObserver struct {
	mock.Mock
}

func (m *MockCommitObserver) AggregateCommitted(kind string) {
	m.Called(kind)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database with the bakery schema.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	observer *MockCommitObserver
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.observer = new(MockCommitObserver)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, suite.observer)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.InventoryRepository())
	suite.NotNil(uow1.SupplierRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.EmployeeRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsPersonAndEmployee() {
	ctx := context.Background()
	suite.observer.On("AggregateCommitted", "employee").Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EmployeeRepository().Add(ctx, suite.newEmployee(111)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count("persona"))
	suite.Equal(int64(1), suite.count("empleado"))
	suite.observer.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEverything() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.EmployeeRepository().Add(ctx, suite.newEmployee(222)))

	p, err := product.NewProduct(1, "Pan dulce")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count("persona"))
	suite.Equal(int64(0), suite.count("empleado"))
	suite.Equal(int64(0), suite.count("producto"))
	suite.observer.AssertNotCalled(suite.T(), "AggregateCommitted", mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FailedStatementKeepsNothing() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.EmployeeRepository().Add(ctx, suite.newEmployee(333)))
	suite.observer.On("AggregateCommitted", "employee").Once()
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	suite.Require().Error(second.EmployeeRepository().Add(ctx, suite.newEmployee(333)))
	suite.Require().NoError(second.Rollback(ctx))

	suite.Equal(int64(1), suite.count("empleado"))
}

func (suite *UnitOfWorkIntegrationTestSuite) newEmployee(id int64) *employee.Employee {
	name, err := kernel.NewPersonName("Laura", "Quesada", "Mora")
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress(1, "Costado norte del parque")
	suite.Require().NoError(err)
	person, err := kernel.NewPerson(id, name, addr, time.Date(1992, time.May, 2, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	e, err := employee.NewEmployee(person, "Panadería", "Técnico")
	suite.Require().NoError(err)
	return e
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
