package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const basePath = "/api/v1"

// ServerInterface lists one method per documented operation.
type ServerInterface interface {
	GetInventory(ctx echo.Context, params ListParams) error
	CreateInventoryItem(ctx echo.Context) error
	GetInventoryAlerts(ctx echo.Context) error
	UpdateInventoryItem(ctx echo.Context, id int64) error
	DeleteInventoryItem(ctx echo.Context, id int64) error

	GetSuppliers(ctx echo.Context, params ListParams) error
	CreateSupplier(ctx echo.Context) error
	UpdateSupplier(ctx echo.Context, id int64) error
	DeleteSupplier(ctx echo.Context, id int64) error

	GetProducts(ctx echo.Context, params ListParams) error
	CreateProduct(ctx echo.Context) error
	UpdateProduct(ctx echo.Context, id int64) error
	DeleteProduct(ctx echo.Context, id int64) error

	GetEmployees(ctx echo.Context, params ListParams) error
	CreateEmployee(ctx echo.Context) error
	UpdateEmployee(ctx echo.Context, id int64) error
	DeleteEmployee(ctx echo.Context, id int64) error

	GetCustomers(ctx echo.Context, params ListParams) error
	CreateCustomer(ctx echo.Context) error
	UpdateCustomer(ctx echo.Context, id int64) error
	DeleteCustomer(ctx echo.Context, id int64) error

	GetOrders(ctx echo.Context, params GetOrdersParams) error
	PlaceOrder(ctx echo.Context) error
	GetOrderStatusSummary(ctx echo.Context) error
	UpdateOrderStatus(ctx echo.Context, number int64) error
	AddProductToOrder(ctx echo.Context, number int64) error
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterHandlers adds every documented route under /api/v1.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(basePath+"/inventory", w.list(si.GetInventory))
	router.POST(basePath+"/inventory", si.CreateInventoryItem)
	router.GET(basePath+"/inventory/alerts", si.GetInventoryAlerts)
	router.PUT(basePath+"/inventory/:id", w.withID("id", si.UpdateInventoryItem))
	router.DELETE(basePath+"/inventory/:id", w.withID("id", si.DeleteInventoryItem))

	router.GET(basePath+"/suppliers", w.list(si.GetSuppliers))
	router.POST(basePath+"/suppliers", si.CreateSupplier)
	router.PUT(basePath+"/suppliers/:id", w.withID("id", si.UpdateSupplier))
	router.DELETE(basePath+"/suppliers/:id", w.withID("id", si.DeleteSupplier))

	router.GET(basePath+"/products", w.list(si.GetProducts))
	router.POST(basePath+"/products", si.CreateProduct)
	router.PUT(basePath+"/products/:id", w.withID("id", si.UpdateProduct))
	router.DELETE(basePath+"/products/:id", w.withID("id", si.DeleteProduct))

	router.GET(basePath+"/employees", w.list(si.GetEmployees))
	router.POST(basePath+"/employees", si.CreateEmployee)
	router.PUT(basePath+"/employees/:id", w.withID("id", si.UpdateEmployee))
	router.DELETE(basePath+"/employees/:id", w.withID("id", si.DeleteEmployee))

	router.GET(basePath+"/customers", w.list(si.GetCustomers))
	router.POST(basePath+"/customers", si.CreateCustomer)
	router.PUT(basePath+"/customers/:id", w.withID("id", si.UpdateCustomer))
	router.DELETE(basePath+"/customers/:id", w.withID("id", si.DeleteCustomer))

	router.GET(basePath+"/orders", w.GetOrders)
	router.POST(basePath+"/orders", si.PlaceOrder)
	router.GET(basePath+"/orders/summary", si.GetOrderStatusSummary)
	router.PUT(basePath+"/orders/:number/status", w.withID("number", si.UpdateOrderStatus))
	router.POST(basePath+"/orders/:number/products", w.withID("number", si.AddProductToOrder))
}

// isProtected reports whether a route requires the X-User-Id header of an
// existing employee. path is the route pattern, not the request path.
func isProtected(method, path string) bool {
	switch path {
	case basePath + "/inventory", basePath + "/suppliers":
		return method == http.MethodPost
	case basePath + "/inventory/:id", basePath + "/suppliers/:id":
		return method == http.MethodPut || method == http.MethodDelete
	default:
		return false
	}
}

func (w *ServerInterfaceWrapper) list(next func(echo.Context, ListParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var params ListParams

		err := runtime.BindQueryParameter("form", true, false, "id", ctx.QueryParams(), &params.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
		}

		return next(ctx, params)
	}
}

func (w *ServerInterfaceWrapper) withID(name string, next func(echo.Context, int64) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var id int64

		err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}

		return next(ctx, id)
	}
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "customer_id", ctx.QueryParams(), &params.CustomerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer_id: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}
