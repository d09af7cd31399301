// Package handler implements the HTTP layer: thin Echo handlers that
// bind the {"data": ...} request envelope, call into the service layer
// and translate errors into status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/service"
	"github.com/iliyamo/restaurant-reservation/internal/validation"
)

// writeDomainError maps core errors onto the HTTP taxonomy: validation
// failures and business-rule conflicts are 400, unknown ids are 404,
// and anything else (driver faults, broken connections) is an opaque
// 500.  The response body always carries a human-readable message.
func writeDomainError(c echo.Context, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Message, "field": verr.Field})
	}
	switch {
	case errors.Is(err, repository.ErrReservationNotFound),
		errors.Is(err, repository.ErrTableNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadySeated),
		errors.Is(err, service.ErrTableOccupied),
		errors.Is(err, service.ErrTableNotOccupied),
		errors.Is(err, service.ErrInsufficientCapacity),
		errors.Is(err, service.ErrReservationFinished),
		errors.Is(err, service.ErrUnknownStatus),
		errors.Is(err, service.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
