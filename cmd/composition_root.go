package cmd

import (
	"context"
	"log/slog"
	"time"

	"bakery/api"
	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/metrics"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/inventory"
	"bakery/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Collector
	policy     inventory.AlertPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, collector *metrics.Collector, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := inventory.NewAlertPolicy(configs.LowStockThreshold, configs.ExpiryWindowDays)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, collector),
		metrics:    collector,
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	return commands.NewCreateInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInventoryItemCommandHandler() commands.UpdateInventoryItemCommandHandler {
	return commands.NewUpdateInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteInventoryItemCommandHandler() commands.DeleteInventoryItemCommandHandler {
	return commands.NewDeleteInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateSupplierCommandHandler() commands.SupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncUoWFactory[commands.SupplierUoW](func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateProductCommandHandler() commands.ProductCommandHandler {
	var f commands.ProductUoWFactory = FuncUoWFactory[commands.ProductUoW](func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProductCommandHandler(f)
}

func (c *CompositionRoot) CreateEmployeeCommandHandler() commands.EmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncUoWFactory[commands.EmployeeUoW](func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerCommandHandler() commands.CustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncUoWFactory[commands.CustomerUoW](func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddProductToOrderCommandHandler() commands.AddProductToOrderCommandHandler {
	return commands.NewAddProductToOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB, c.policy, time.Now)
}

func (c *CompositionRoot) CreateGetInventoryAlertsQueryHandler() queries.GetInventoryAlertsQueryHandler {
	return queries.NewGetInventoryAlertsQueryHandler(c.CreateGetInventoryQueryHandler())
}

func (c *CompositionRoot) CreateGetSuppliersQueryHandler() queries.GetSuppliersQueryHandler {
	return queries.NewGetSuppliersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEmployeesQueryHandler() queries.GetEmployeesQueryHandler {
	return queries.NewGetEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEmployeeExistsQueryHandler() queries.EmployeeExistsQueryHandler {
	return queries.NewEmployeeExistsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.gormDB)
}

// CreateHandlers wires every use case the HTTP server delegates to.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	createItem := c.CreateCreateInventoryItemCommandHandler()
	updateItem := c.CreateUpdateInventoryItemCommandHandler()
	deleteItem := c.CreateDeleteInventoryItemCommandHandler()
	suppliers := c.CreateSupplierCommandHandler()
	products := c.CreateProductCommandHandler()
	employees := c.CreateEmployeeCommandHandler()
	customers := c.CreateCustomerCommandHandler()
	placeOrder := c.CreatePlaceOrderCommandHandler()
	updateStatus := c.CreateUpdateOrderStatusCommandHandler()
	addProduct := c.CreateAddProductToOrderCommandHandler()

	return httpin.Handlers{
		CreateInventoryItem:   &createItem,
		UpdateInventoryItem:   &updateItem,
		DeleteInventoryItem:   &deleteItem,
		GetInventory:          c.CreateGetInventoryQueryHandler(),
		GetInventoryAlerts:    c.CreateGetInventoryAlertsQueryHandler(),
		Suppliers:             &suppliers,
		GetSuppliers:          c.CreateGetSuppliersQueryHandler(),
		Products:              &products,
		GetProducts:           c.CreateGetProductsQueryHandler(),
		Employees:             &employees,
		GetEmployees:          c.CreateGetEmployeesQueryHandler(),
		EmployeeExists:        c.CreateEmployeeExistsQueryHandler(),
		Customers:             &customers,
		GetCustomers:          c.CreateGetCustomersQueryHandler(),
		PlaceOrder:            &placeOrder,
		UpdateOrderStatus:     &updateStatus,
		AddProductToOrder:     &addProduct,
		GetOrders:             c.CreateGetOrdersQueryHandler(),
		GetOrderStatusSummary: c.CreateGetOrderStatusSummaryQueryHandler(),
	}
}

// CreateEcho builds the HTTP server around the embedded OpenAPI document.
func (c *CompositionRoot) CreateEcho(ctx context.Context, db httpin.Pinger) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(c.CreateHandlers(), c.logger)
	return httpin.NewEcho(server, doc, c.metrics, db)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateGetInventoryAlertsQueryHandler(),
		c.metrics,
		c.configs.InventoryAlertSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncUoWFactory[commands.InventoryUoW](func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncUoWFactory[commands.OrderUoW](func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// FuncUoWFactory adapts a constructor function to any of the per-aggregate
// UoW factory interfaces.
type FuncUoWFactory[U any] func() U

func (f FuncUoWFactory[U]) Create() U {
	return f()
}
