package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/voucher"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request. Code is
// a stable machine-readable identifier; Message is the human-readable cause.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps core errors onto HTTP statuses and stable error codes.
// Business rule rejections are conflicts; validation failures are bad
// requests; everything unrecognized is a 500 with the details withheld.
func respondError(ctx echo.Context, err error) error {
	status, code := classify(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{Code: code, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, order.ErrCancellationWindowClosed):
		return http.StatusConflict, "cancellation_window_closed"
	case errors.Is(err, order.ErrAlreadyAssigned):
		return http.StatusConflict, "already_assigned"
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, commands.ErrRestaurantClosed):
		return http.StatusConflict, "restaurant_closed"
	case errors.Is(err, commands.ErrMenuItemUnavailable):
		return http.StatusConflict, "menu_item_unavailable"
	case errors.Is(err, driver.ErrInsufficientBalance):
		return http.StatusConflict, "insufficient_balance"
	case errors.Is(err, driver.ErrDriverNotApproved):
		return http.StatusConflict, "driver_not_approved"
	case errors.Is(err, voucher.ErrVoucherInactive):
		return http.StatusConflict, "voucher_inactive"
	case errors.Is(err, voucher.ErrVoucherExhausted):
		return http.StatusConflict, "voucher_exhausted"
	case errors.Is(err, voucher.ErrMinOrderNotMet):
		return http.StatusConflict, "voucher_min_order_not_met"
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
