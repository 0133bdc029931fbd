package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error to the HTTP error taxonomy:
//
//	validation failures            -> 400
//	missing objects                -> 404
//	business conflicts             -> 409
//	anything else                  -> 500
//
// Conflicts cover the unavailable product, the rejected status transition,
// the lost status race, the protected customer delete, and the duplicate
// email.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrStatusConflict),
		errors.Is(err, customer.ErrCustomerHasOrders),
		errors.Is(err, customer.ErrEmailAlreadyRegistered):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
