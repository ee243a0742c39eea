package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ApiResponse is the envelope wrapping every non-204 response body. Exactly
// one of Data and Errors is non-null; Status mirrors the HTTP status code.
type ApiResponse struct {
	Data   interface{} `json:"data"`
	Status int         `json:"status"`
	Errors []string    `json:"errors"`
}

func okResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, ApiResponse{Data: data, Status: http.StatusOK})
}

func createdResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, ApiResponse{Data: data, Status: http.StatusCreated})
}

func noContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error emitters take one or many messages; a single message still arrives
// at the client as a one-element array.

func badRequestResponse(c echo.Context, errs ...string) error {
	return c.JSON(http.StatusBadRequest, ApiResponse{Status: http.StatusBadRequest, Errors: errs})
}

func notFoundResponse(c echo.Context, errs ...string) error {
	return c.JSON(http.StatusNotFound, ApiResponse{Status: http.StatusNotFound, Errors: errs})
}

// fatalErrorResponse reports a store or infrastructure failure. The real
// error is logged server-side and never echoed to the caller.
func fatalErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ApiResponse{
		Status: http.StatusInternalServerError,
		Errors: []string{"Something went wrong"},
	})
}
