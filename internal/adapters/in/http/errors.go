package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail maps err to a status code and a message that is safe to show. Only
// 5xx causes are hidden; they are logged with the operation that failed.
func (s *Server) fail(c echo.Context, err error, operation string) error {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"operation", operation,
			"error", err,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		message = "Failed to " + operation
	}
	return respondError(c, status, message)
}

func classify(err error) (int, string) {
	var (
		notFound   *errs.ObjectNotFoundError
		exists     *errs.ObjectAlreadyExistsError
		referenced *errs.ObjectIsReferencedError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s %v not found", notFound.ParamName, notFound.ID)
	case errors.As(err, &exists):
		return http.StatusConflict, fmt.Sprintf("%s %v already exists", exists.ParamName, exists.ID)
	case errors.As(err, &referenced):
		return http.StatusConflict, fmt.Sprintf("%s %v is still referenced", referenced.ParamName, referenced.ID)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, commands.ErrItemIsBothIngredientAndMaterial),
		errors.Is(err, errIDMismatch):
		return http.StatusBadRequest, oneLine(err.Error())
	default:
		return http.StatusInternalServerError, ""
	}
}

// errorHandler renders framework errors (unknown routes, binding failures,
// panics) in the response envelope.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "error", err, "path", c.Path())
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = respondError(c, status, message)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", "; ")
}
