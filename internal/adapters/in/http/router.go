package http

import (
	"context"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const healthTimeout = 2 * time.Second

// Metrics observes requests and renders the scrape endpoint.
type Metrics interface {
	RequestObserver
	Handler() http.Handler
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewEcho builds the HTTP entry point: API routes under /api/v1 behind the
// middleware chain, plus /health, /metrics, /openapi.json and /swagger/*.
func NewEcho(server *Server, doc *openapi3.T, metrics Metrics, db Pinger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(server.logger)

	validator, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}

	e.Use(
		requestID(),
		observeRequests(metrics),
		requestLogger(server.logger),
		middleware.Recover(),
		requireEmployee(server.h.EmployeeExists, server.logger),
		validator,
	)

	RegisterHandlers(e, server)

	e.GET("/health", health(db))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if err := registerDocs(e, doc); err != nil {
		return nil, err
	}

	return e, nil
}

func health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return respondError(c, http.StatusServiceUnavailable, "Database unavailable")
		}
		return respond(c, http.StatusOK, "Healthy")
	}
}
