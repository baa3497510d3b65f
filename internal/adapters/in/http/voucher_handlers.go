package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type validateVoucherRequest struct {
	Code             string `json:"code"`
	OrderAmountCents int64  `json:"order_amount_cents"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents"`
}

type validateVoucherResponse struct {
	Valid         bool   `json:"valid"`
	DiscountCents int64  `json:"discount_cents"`
	Description   string `json:"description,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// ValidateVoucher handles POST /api/v1/vouchers/validate. It runs the same
// evaluator checkout uses; an ineligible voucher is a 200 with valid false.
func (s *Server) ValidateVoucher(ctx echo.Context) error {
	var request validateVoucherRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderAmount, err := kernel.NewMoney(request.OrderAmountCents)
	if err != nil {
		return respondError(ctx, err)
	}
	deliveryFee, err := kernel.NewMoney(request.DeliveryFeeCents)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewValidateVoucherQuery(request.Code, orderAmount, deliveryFee)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.validateVoucherHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, validateVoucherResponse{
		Valid:         result.Valid,
		DiscountCents: result.Discount.Cents(),
		Description:   result.Description,
		Reason:        result.Reason,
	})
}
