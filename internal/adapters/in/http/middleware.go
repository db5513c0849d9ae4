package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HeaderUserID carries the id of the employee performing a protected write.
const HeaderUserID = "X-User-Id"

const unmatchedRoute = "unmatched"

// RequestObserver records one finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, code int, elapsed time.Duration)
}

func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}

			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.LogAttrs(c.Request().Context(), level, "Request", attrs...)
			return nil
		},
	})
}

// observeRequests reports every request with its route pattern, so ids in
// the path do not multiply label values.
func observeRequests(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			observer.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			return err
		}
	}
}

// requireEmployee rejects protected writes unless X-User-Id names an
// existing employee.
func requireEmployee(exists QueryHandler[int64, bool], logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isProtected(c.Request().Method, c.Path()) {
				return next(c)
			}

			id, err := strconv.ParseInt(strings.TrimSpace(c.Request().Header.Get(HeaderUserID)), 10, 64)
			if err != nil || id <= 0 {
				return respondError(c, http.StatusUnauthorized, "Unauthorized")
			}

			ok, err := exists.Handle(c.Request().Context(), id)
			if err != nil {
				logger.ErrorContext(c.Request().Context(), "Employee lookup failed", "employee_id", id, "error", err)
				return respondError(c, http.StatusInternalServerError, "Failed to authorize request")
			}
			if !ok {
				return respondError(c, http.StatusUnauthorized, "Unauthorized")
			}

			return next(c)
		}
	}
}

// validateRequests checks documented requests against doc. Requests the
// document does not describe pass through untouched.
func validateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return respondError(c, http.StatusBadRequest, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "Invalid request"
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			reason = fmt.Sprintf("%s: %s", strings.Join(pointer, "."), reason)
		}
	} else if reason == "" && reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}

	switch {
	case reqErr.Parameter != nil:
		return oneLine(fmt.Sprintf("Invalid parameter %s: %s", reqErr.Parameter.Name, reason))
	case reqErr.RequestBody != nil:
		return oneLine("Invalid request body: " + reason)
	default:
		return oneLine("Invalid request: " + reason)
	}
}
