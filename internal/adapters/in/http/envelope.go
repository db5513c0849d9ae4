package http

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}

type createdID struct {
	ID int64 `json:"id"`
}

type createdOrder struct {
	Number int64 `json:"number"`
}
