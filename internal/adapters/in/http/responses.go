package http

import (
	"errors"
	"net/http"

	"storefront/internal/adapters/out/vnpay"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), envelope{Success: false, Message: err.Error()})
}

// statusForError maps the application error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError
	var invalidState *errs.InvalidStateError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, product.ErrInsufficientStock):
		return http.StatusConflict
	case errors.As(err, &invalidState):
		return http.StatusConflict
	case errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrPaymentAmountMismatch),
		errors.Is(err, vnpay.ErrInvalidSignature):
		return http.StatusBadRequest
	default:
		var required *errs.ValueIsRequiredError
		var invalid *errs.ValueIsInvalidError
		var outOfRange *errs.ValueIsOutOfRangeError
		if errors.As(err, &required) || errors.As(err, &invalid) || errors.As(err, &outOfRange) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
