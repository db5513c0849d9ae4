package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

var errIDMismatch = errors.New("id in the body does not match the id in the path")

// CommandHandler is satisfied by the single-operation command handlers.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by query handlers and by commands that return a value.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// ReportHandler is satisfied by queries without input.
type ReportHandler[R any] interface {
	Handle(ctx context.Context) (R, error)
}

// CRUDHandler is satisfied by the handlers that group create, update and
// delete for one entity.
type CRUDHandler[C any] interface {
	Create(ctx context.Context, cmd C) error
	Update(ctx context.Context, cmd C) error
	Delete(ctx context.Context, cmd commands.DeleteByIDCommand) error
}

type deleter interface {
	Delete(ctx context.Context, cmd commands.DeleteByIDCommand) error
}

// Handlers are the use cases the server delegates to.
type Handlers struct {
	CreateInventoryItem CommandHandler[commands.CreateInventoryItemCommand]
	UpdateInventoryItem CommandHandler[commands.UpdateInventoryItemCommand]
	DeleteInventoryItem CommandHandler[commands.DeleteInventoryItemCommand]
	GetInventory        QueryHandler[queries.ByIDQuery, []queries.InventoryItemView]
	GetInventoryAlerts  ReportHandler[queries.InventoryAlerts]

	Suppliers    CRUDHandler[commands.SaveSupplierCommand]
	GetSuppliers QueryHandler[queries.ByIDQuery, []queries.SupplierView]

	Products    CRUDHandler[commands.SaveProductCommand]
	GetProducts QueryHandler[queries.ByIDQuery, []queries.ProductView]

	Employees      CRUDHandler[commands.SaveEmployeeCommand]
	GetEmployees   QueryHandler[queries.ByIDQuery, []queries.EmployeeView]
	EmployeeExists QueryHandler[int64, bool]

	Customers    CRUDHandler[commands.SaveCustomerCommand]
	GetCustomers QueryHandler[queries.ByIDQuery, []queries.CustomerView]

	PlaceOrder            QueryHandler[commands.PlaceOrderCommand, int64]
	UpdateOrderStatus     CommandHandler[commands.UpdateOrderStatusCommand]
	AddProductToOrder     CommandHandler[commands.AddProductToOrderCommand]
	GetOrders             QueryHandler[queries.GetOrdersQuery, []queries.OrderView]
	GetOrderStatusSummary ReportHandler[[]queries.StatusCount]
}

// Server implements ServerInterface on top of the application handlers.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

var _ ServerInterface = (*Server)(nil)

// GetInventory handles GET /api/v1/inventory.
func (s *Server) GetInventory(c echo.Context, params ListParams) error {
	const op = "retrieve inventory"

	query, err := listQuery(params)
	if err != nil {
		return s.fail(c, err, op)
	}

	items, err := s.h.GetInventory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, items)
}

// CreateInventoryItem handles POST /api/v1/inventory.
func (s *Server) CreateInventoryItem(c echo.Context) error {
	const op = "create inventory item"

	var body InventoryItemRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateInventoryItemCommand(body.toData())
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = s.h.CreateInventoryItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusCreated, createdID{ID: body.ID})
}

// GetInventoryAlerts handles GET /api/v1/inventory/alerts.
func (s *Server) GetInventoryAlerts(c echo.Context) error {
	alerts, err := s.h.GetInventoryAlerts.Handle(c.Request().Context())
	if err != nil {
		return s.fail(c, err, "retrieve inventory alerts")
	}
	return respond(c, http.StatusOK, alerts)
}

// UpdateInventoryItem handles PUT /api/v1/inventory/{id}.
func (s *Server) UpdateInventoryItem(c echo.Context, id int64) error {
	const op = "update inventory item"

	var body InventoryItemRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := matchID(&body.ID, id); err != nil {
		return s.fail(c, err, op)
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(body.toData())
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = s.h.UpdateInventoryItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, nil)
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/{id}.
func (s *Server) DeleteInventoryItem(c echo.Context, id int64) error {
	const op = "delete inventory item"

	cmd, err := commands.NewDeleteInventoryItemCommand(id)
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = s.h.DeleteInventoryItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, nil)
}

// GetSuppliers handles GET /api/v1/suppliers.
func (s *Server) GetSuppliers(c echo.Context, params ListParams) error {
	return list(s, c, params, s.h.GetSuppliers, "retrieve suppliers")
}

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(c echo.Context) error {
	return s.saveSupplier(c, 0, false)
}

// UpdateSupplier handles PUT /api/v1/suppliers/{id}.
func (s *Server) UpdateSupplier(c echo.Context, id int64) error {
	return s.saveSupplier(c, id, true)
}

// DeleteSupplier handles DELETE /api/v1/suppliers/{id}.
func (s *Server) DeleteSupplier(c echo.Context, id int64) error {
	return s.deleteByID(c, id, s.h.Suppliers, "delete supplier")
}

func (s *Server) saveSupplier(c echo.Context, pathID int64, update bool) error {
	op := operation("supplier", update)

	var body SupplierRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if update {
		if err := matchID(&body.ID, pathID); err != nil {
			return s.fail(c, err, op)
		}
	}

	cmd, err := commands.NewSaveSupplierCommand(body.toData())
	if err != nil {
		return s.fail(c, err, op)
	}

	return s.save(c, body.ID, update, op, func(ctx context.Context) error {
		if update {
			return s.h.Suppliers.Update(ctx, cmd)
		}
		return s.h.Suppliers.Create(ctx, cmd)
	})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(c echo.Context, params ListParams) error {
	return list(s, c, params, s.h.GetProducts, "retrieve products")
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	return s.saveProduct(c, 0, false)
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpdateProduct(c echo.Context, id int64) error {
	return s.saveProduct(c, id, true)
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) DeleteProduct(c echo.Context, id int64) error {
	return s.deleteByID(c, id, s.h.Products, "delete product")
}

func (s *Server) saveProduct(c echo.Context, pathID int64, update bool) error {
	op := operation("product", update)

	var body ProductRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if update {
		if err := matchID(&body.ID, pathID); err != nil {
			return s.fail(c, err, op)
		}
	}

	cmd, err := commands.NewSaveProductCommand(body.ID, body.Type)
	if err != nil {
		return s.fail(c, err, op)
	}

	return s.save(c, body.ID, update, op, func(ctx context.Context) error {
		if update {
			return s.h.Products.Update(ctx, cmd)
		}
		return s.h.Products.Create(ctx, cmd)
	})
}

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(c echo.Context, params ListParams) error {
	return list(s, c, params, s.h.GetEmployees, "retrieve employees")
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(c echo.Context) error {
	return s.saveEmployee(c, 0, false)
}

// UpdateEmployee handles PUT /api/v1/employees/{id}.
func (s *Server) UpdateEmployee(c echo.Context, id int64) error {
	return s.saveEmployee(c, id, true)
}

// DeleteEmployee handles DELETE /api/v1/employees/{id}.
func (s *Server) DeleteEmployee(c echo.Context, id int64) error {
	return s.deleteByID(c, id, s.h.Employees, "delete employee")
}

func (s *Server) saveEmployee(c echo.Context, pathID int64, update bool) error {
	op := operation("employee", update)

	var body EmployeeRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if update {
		if err := matchID(&body.ID, pathID); err != nil {
			return s.fail(c, err, op)
		}
	}

	cmd, err := commands.NewSaveEmployeeCommand(body.toData(), body.Specialty, body.Degree)
	if err != nil {
		return s.fail(c, err, op)
	}

	return s.save(c, body.ID, update, op, func(ctx context.Context) error {
		if update {
			return s.h.Employees.Update(ctx, cmd)
		}
		return s.h.Employees.Create(ctx, cmd)
	})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(c echo.Context, params ListParams) error {
	return list(s, c, params, s.h.GetCustomers, "retrieve customers")
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	return s.saveCustomer(c, 0, false)
}

// UpdateCustomer handles PUT /api/v1/customers/{id}.
func (s *Server) UpdateCustomer(c echo.Context, id int64) error {
	return s.saveCustomer(c, id, true)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (s *Server) DeleteCustomer(c echo.Context, id int64) error {
	return s.deleteByID(c, id, s.h.Customers, "delete customer")
}

func (s *Server) saveCustomer(c echo.Context, pathID int64, update bool) error {
	op := operation("customer", update)

	var body CustomerRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if update {
		if err := matchID(&body.ID, pathID); err != nil {
			return s.fail(c, err, op)
		}
	}

	cmd, err := commands.NewSaveCustomerCommand(body.toData(), body.Frequent)
	if err != nil {
		return s.fail(c, err, op)
	}

	return s.save(c, body.ID, update, op, func(ctx context.Context) error {
		if update {
			return s.h.Customers.Update(ctx, cmd)
		}
		return s.h.Customers.Create(ctx, cmd)
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context, params GetOrdersParams) error {
	const op = "retrieve orders"

	var (
		customerID int64
		status     string
	)
	if params.CustomerID != nil {
		customerID = *params.CustomerID
	}
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetOrdersQuery(customerID, status)
	if err != nil {
		return s.fail(c, err, op)
	}

	orders, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, orders)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	const op = "place order"

	var body NewOrderRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(body.CustomerID, body.Description, body.DeliveryDate)
	if err != nil {
		return s.fail(c, err, op)
	}

	number, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusCreated, createdOrder{Number: number})
}

// GetOrderStatusSummary handles GET /api/v1/orders/summary.
func (s *Server) GetOrderStatusSummary(c echo.Context) error {
	summary, err := s.h.GetOrderStatusSummary.Handle(c.Request().Context())
	if err != nil {
		return s.fail(c, err, "retrieve order summary")
	}
	return respond(c, http.StatusOK, summary)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{number}/status.
func (s *Server) UpdateOrderStatus(c echo.Context, number int64) error {
	const op = "update order status"

	var body StatusChangeRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(number, body.Status)
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, nil)
}

// AddProductToOrder handles POST /api/v1/orders/{number}/products.
func (s *Server) AddProductToOrder(c echo.Context, number int64) error {
	const op = "add product to order"

	var body OrderLineRequest
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddProductToOrderCommand(number, body.ProductID, body.Quantity, body.PreparationDate.Time)
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = s.h.AddProductToOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusCreated, nil)
}

func (s *Server) save(c echo.Context, id int64, update bool, op string, write func(context.Context) error) error {
	if err := write(c.Request().Context()); err != nil {
		return s.fail(c, err, op)
	}
	if update {
		return respond(c, http.StatusOK, nil)
	}
	return respond(c, http.StatusCreated, createdID{ID: id})
}

func (s *Server) deleteByID(c echo.Context, id int64, d deleter, op string) error {
	cmd, err := commands.NewDeleteByIDCommand(id)
	if err != nil {
		return s.fail(c, err, op)
	}

	if err = d.Delete(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, nil)
}

func list[R any](s *Server, c echo.Context, params ListParams, handler QueryHandler[queries.ByIDQuery, []R], op string) error {
	query, err := listQuery(params)
	if err != nil {
		return s.fail(c, err, op)
	}

	rows, err := handler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, op)
	}
	return respond(c, http.StatusOK, rows)
}

// matchID fills a missing body id from the path and rejects a different one.
func matchID(bodyID *int64, pathID int64) error {
	if *bodyID == 0 {
		*bodyID = pathID
	}
	if *bodyID != pathID {
		return errIDMismatch
	}
	return nil
}

func listQuery(params ListParams) (queries.ByIDQuery, error) {
	if params.ID == nil {
		return queries.NewListQuery(), nil
	}
	return queries.NewByIDQuery(*params.ID)
}

func operation(entity string, update bool) string {
	if update {
		return "update " + entity
	}
	return "create " + entity
}
