package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(kind string, id int64, aggregate any) {
	m.Called(kind, id, aggregate)
}

const customerID int64 = 109870654

var deliveryAt = time.Date(2026, time.December, 24, 15, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite verifies the order stored functions
// against a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)

	suite.seedCustomer()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIncreasingNumbers() {
	ctx := context.Background()

	first, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)
	second, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)

	suite.Positive(first)
	suite.Greater(second, first)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", "order", first, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownCustomer() {
	_, err := suite.repository.Add(context.Background(), suite.newOrder(42))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ReturnsPlacedOrder() {
	ctx := context.Background()
	number, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)

	o, err := suite.repository.Get(ctx, number)

	suite.Require().NoError(err)
	suite.Equal(number, o.Number())
	suite.Equal(customerID, o.CustomerID())
	suite.Equal("Pastel de boda, tres pisos", o.Description())
	suite.True(deliveryAt.Equal(o.DeliveryAt()))
	suite.Equal(order.Placed, o.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.repository.Get(context.Background(), 999)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_AnyTransition() {
	ctx := context.Background()
	number, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)

	for _, status := range []order.Status{order.Ready, order.Placed, order.InPreparation} {
		o, err := suite.repository.Get(ctx, number)
		suite.Require().NoError(err)
		suite.Require().NoError(o.ChangeStatus(status))

		suite.Require().NoError(suite.repository.UpdateStatus(ctx, o))

		stored, err := suite.repository.Get(ctx, number)
		suite.Require().NoError(err)
		suite.Equal(status, stored.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_Missing() {
	o, err := order.RestoreOrder(777, customerID, "Galletas", deliveryAt, order.Ready)
	suite.Require().NoError(err)

	err = suite.repository.UpdateStatus(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine() {
	ctx := context.Background()
	suite.seedProduct(5)
	number, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)

	line, err := order.NewLine(5, 3, deliveryAt.AddDate(0, 0, -1))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddLine(ctx, number, line))
	suite.Require().ErrorIs(suite.repository.AddLine(ctx, number, line), errs.ErrObjectAlreadyExists)

	var quantity int
	suite.Require().NoError(suite.database.DB.
		Raw("SELECT cantidad FROM pedido_producto WHERE num_pedido = ? AND id_producto = ?", number, 5).
		Scan(&quantity).Error)
	suite.Equal(3, quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine_MissingProductOrOrder() {
	ctx := context.Background()
	number, err := suite.repository.Add(ctx, suite.newOrder(customerID))
	suite.Require().NoError(err)

	line, err := order.NewLine(404, 1, deliveryAt)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.AddLine(ctx, number, line), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.AddLine(ctx, number+100, line), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customerNo int64) *order.Order {
	o, err := order.NewOrder(customerNo, "Pastel de boda, tres pisos", deliveryAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) seedCustomer() {
	name, err := kernel.NewPersonName("Rosa", "Chaves", "Ulate")
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress(3, "Urbanización Los Robles, casa 8")
	suite.Require().NoError(err)
	person, err := kernel.NewPerson(customerID, name, addr, time.Date(1979, time.August, 30, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(person, true)
	suite.Require().NoError(err)

	repo := customerrepo.NewGormCustomerRepository(suite.database.DB, suite.tracker)
	suite.Require().NoError(repo.Add(context.Background(), c))
}

func (suite *OrderRepositoryIntegrationTestSuite) seedProduct(id int64) {
	p, err := product.NewProduct(id, "Queque de zanahoria")
	suite.Require().NoError(err)

	repo := productrepo.NewGormProductRepository(suite.database.DB, suite.tracker)
	suite.Require().NoError(repo.Add(context.Background(), p))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
