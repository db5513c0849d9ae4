package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/employeerepo"
	"bakery/internal/adapters/out/postgres/inventoryrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/postgres/supplierrepo"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/employee"
	"bakery/internal/core/domain/model/inventory"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/supplier"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, int64, any) {}

var today = time.Date(2026, time.October, 17, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return today }

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetInventory_FlagsEachLine() {
	suite.seedIngredient(1, "Levadura", 15, today.AddDate(0, 0, 10))
	suite.seedIngredient(2, "Mantequilla", 25, today.AddDate(0, 0, 20))
	suite.seedIngredient(3, "Crema", 30, today.AddDate(0, 0, -1))
	suite.seedMaterial(4, "Caja", 5)

	handler := queries.NewGetInventoryQueryHandler(suite.database.DB, inventory.DefaultAlertPolicy(), clock)
	items, err := handler.Handle(context.Background(), queries.NewListQuery())
	suite.Require().NoError(err)
	suite.Require().Len(items, 4)

	suite.True(items[0].IsLowStock)
	suite.True(items[0].IsExpiring)
	suite.Equal("ingredient", items[0].Kind)
	suite.Require().NotNil(items[0].DaysUntilExpiry)
	suite.Equal(10, *items[0].DaysUntilExpiry)

	suite.False(items[1].IsLowStock)
	suite.False(items[1].IsExpiring)

	suite.False(items[2].IsExpiring)
	suite.Equal(-1, *items[2].DaysUntilExpiry)

	suite.Equal("material", items[3].Kind)
	suite.True(items[3].IsLowStock)
	suite.False(items[3].IsExpiring)
	suite.Nil(items[3].ExpiresOn)
	suite.Require().NotNil(items[3].Color)
	suite.Equal("blanco", *items[3].Color)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetInventory_ByID() {
	suite.seedIngredient(1, "Levadura", 15, today.AddDate(0, 0, 10))
	suite.seedIngredient(2, "Mantequilla", 25, today.AddDate(0, 0, 20))
	handler := queries.NewGetInventoryQueryHandler(suite.database.DB, inventory.DefaultAlertPolicy(), clock)

	query, err := queries.NewByIDQuery(2)
	suite.Require().NoError(err)
	items, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Mantequilla", items[0].Name)
	suite.InDelta(1250.5, items[0].Price, 0.001)

	missing, err := queries.NewByIDQuery(99)
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetInventoryAlerts_UsesPolicy() {
	suite.seedIngredient(1, "Levadura", 15, today.AddDate(0, 0, 10))
	suite.seedIngredient(2, "Mantequilla", 25, today.AddDate(0, 0, 20))

	policy, err := inventory.NewAlertPolicy(30, 25)
	suite.Require().NoError(err)
	handler := queries.NewGetInventoryAlertsQueryHandler(
		queries.NewGetInventoryQueryHandler(suite.database.DB, policy, clock),
	)

	alerts, err := handler.Handle(context.Background())
	suite.Require().NoError(err)
	suite.Len(alerts.LowStock, 2)
	suite.Len(alerts.Expiring, 2)
	suite.Equal(30, alerts.LowStockThreshold)
	suite.Equal(25, alerts.ExpiryWindowDays)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetSuppliersAndProducts() {
	ctx := context.Background()
	addr, err := kernel.NewAddress(4, "Zona industrial, bodega 3")
	suite.Require().NoError(err)
	s, err := supplier.NewSupplier(3101, "Molinos del Valle", addr)
	suite.Require().NoError(err)
	suite.Require().NoError(supplierrepo.NewGormSupplierRepository(suite.database.DB, noopTracker{}).Add(ctx, s))
	suite.seedProduct(5, "Queque de zanahoria")

	suppliers, err := queries.NewGetSuppliersQueryHandler(suite.database.DB).Handle(ctx, queries.NewListQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.SupplierView{
		{ID: 3101, Name: "Molinos del Valle", CityID: 4, Directions: "Zona industrial, bodega 3"},
	}, suppliers)

	products, err := queries.NewGetProductsQueryHandler(suite.database.DB).Handle(ctx, queries.NewListQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.ProductView{{ID: 5, Type: "Queque de zanahoria"}}, products)

	missing, err := queries.NewByIDQuery(6)
	suite.Require().NoError(err)
	_, err = queries.NewGetProductsQueryHandler(suite.database.DB).Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetEmployees_AndExists() {
	ctx := context.Background()
	e, err := employee.NewEmployee(suite.person(304560789, "Marta"), "Repostería", "Técnico en panadería")
	suite.Require().NoError(err)
	suite.Require().NoError(employeerepo.NewGormEmployeeRepository(suite.database.DB, noopTracker{}).Add(ctx, e))

	employees, err := queries.NewGetEmployeesQueryHandler(suite.database.DB).Handle(ctx, queries.NewListQuery())
	suite.Require().NoError(err)
	suite.Require().Len(employees, 1)
	suite.Equal(int64(304560789), employees[0].ID)
	suite.Equal("Marta", employees[0].FirstName)
	suite.Equal("Repostería", employees[0].Specialty)

	exists := queries.NewEmployeeExistsQueryHandler(suite.database.DB)
	ok, err := exists.Handle(ctx, 304560789)
	suite.Require().NoError(err)
	suite.True(ok)
	ok, err = exists.Handle(ctx, 1)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCustomers() {
	suite.seedCustomer(109870654, "Rosa", true)
	suite.seedCustomer(205550111, "Luis", false)

	customers, err := queries.NewGetCustomersQueryHandler(suite.database.DB).Handle(context.Background(), queries.NewListQuery())
	suite.Require().NoError(err)
	suite.Require().Len(customers, 2)
	suite.True(customers[0].Frequent)
	suite.False(customers[1].Frequent)
	suite.Equal("Chaves", customers[0].FirstLastName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_Filters() {
	ctx := context.Background()
	suite.seedCustomer(109870654, "Rosa", true)
	suite.seedCustomer(205550111, "Luis", false)
	first := suite.seedOrder(109870654, today.AddDate(0, 0, 2), order.Placed)
	second := suite.seedOrder(205550111, today.AddDate(0, 0, 1), order.Ready)
	third := suite.seedOrder(109870654, today.AddDate(0, 0, 3), order.Ready)

	handler := queries.NewGetOrdersQueryHandler(suite.database.DB)

	all, err := handler.Handle(ctx, suite.ordersQuery(0, ""))
	suite.Require().NoError(err)
	suite.Equal([]int64{second, first, third}, numbers(all))
	suite.Equal("Luis Chaves Ulate", all[0].CustomerName)

	rosa, err := handler.Handle(ctx, suite.ordersQuery(109870654, ""))
	suite.Require().NoError(err)
	suite.Equal([]int64{first, third}, numbers(rosa))

	ready, err := handler.Handle(ctx, suite.ordersQuery(0, "listo"))
	suite.Require().NoError(err)
	suite.Equal([]int64{second, third}, numbers(ready))

	rosaReady, err := handler.Handle(ctx, suite.ordersQuery(109870654, "listo"))
	suite.Require().NoError(err)
	suite.Equal([]int64{third}, numbers(rosaReady))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderStatusSummary_ZeroFilled() {
	suite.seedCustomer(109870654, "Rosa", true)
	suite.seedOrder(109870654, today, order.Ready)
	suite.seedOrder(109870654, today, order.Ready)
	suite.seedOrder(109870654, today, order.Placed)

	summary, err := queries.NewGetOrderStatusSummaryQueryHandler(suite.database.DB).Handle(context.Background())
	suite.Require().NoError(err)
	suite.Equal([]queries.StatusCount{
		{Status: "encargado", Total: 1},
		{Status: "elaborando", Total: 0},
		{Status: "listo", Total: 2},
	}, summary)
}

func (suite *QueryHandlersIntegrationTestSuite) ordersQuery(customerID int64, status string) queries.GetOrdersQuery {
	q, err := queries.NewGetOrdersQuery(customerID, status)
	suite.Require().NoError(err)
	return q
}

func numbers(orders []queries.OrderView) []int64 {
	result := make([]int64, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Number)
	}
	return result
}

func (suite *QueryHandlersIntegrationTestSuite) newItem(id int64, name string, quantity int) *inventory.Item {
	item, err := inventory.NewItem(id, "Insumo", "La Favorita", name,
		time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), 1250.5, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *QueryHandlersIntegrationTestSuite) seedIngredient(id int64, name string, quantity int, expires time.Time) {
	item := suite.newItem(id, name, quantity)
	suite.Require().NoError(item.MarkAsIngredient(expires))
	repo := inventoryrepo.NewGormInventoryRepository(suite.database.DB, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), item))
}

func (suite *QueryHandlersIntegrationTestSuite) seedMaterial(id int64, name string, quantity int) {
	item := suite.newItem(id, name, quantity)
	suite.Require().NoError(item.MarkAsMaterial("Caja para pastel de dos pisos", "blanco"))
	repo := inventoryrepo.NewGormInventoryRepository(suite.database.DB, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), item))
}

func (suite *QueryHandlersIntegrationTestSuite) seedProduct(id int64, productType string) {
	p, err := product.NewProduct(id, productType)
	suite.Require().NoError(err)
	suite.Require().NoError(productrepo.NewGormProductRepository(suite.database.DB, noopTracker{}).
		Add(context.Background(), p))
}

func (suite *QueryHandlersIntegrationTestSuite) person(id int64, firstName string) kernel.Person {
	name, err := kernel.NewPersonName(firstName, "Chaves", "Ulate")
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress(3, "Urbanización Los Robles, casa 8")
	suite.Require().NoError(err)
	p, err := kernel.NewPerson(id, name, addr, time.Date(1979, time.August, 30, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return p
}

func (suite *QueryHandlersIntegrationTestSuite) seedCustomer(id int64, firstName string, frequent bool) {
	c, err := customer.NewCustomer(suite.person(id, firstName), frequent)
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.database.DB, noopTracker{}).
		Add(context.Background(), c))
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(customerID int64, deliveryAt time.Time, status order.Status) int64 {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.database.DB, noopTracker{})

	o, err := order.NewOrder(customerID, "Pedido de prueba", deliveryAt)
	suite.Require().NoError(err)
	number, err := repo.Add(ctx, o)
	suite.Require().NoError(err)

	if status != order.Placed {
		stored, err := repo.Get(ctx, number)
		suite.Require().NoError(err)
		suite.Require().NoError(stored.ChangeStatus(status))
		suite.Require().NoError(repo.UpdateStatus(ctx, stored))
	}
	return number
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
