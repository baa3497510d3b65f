package http

import (
	"net/http"
	"strconv"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

type orderSummaryResponse struct {
	OrderID      string `json:"order_id"`
	Number       string `json:"number"`
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
	StatusText   string `json:"status_text"`
	TotalCents   int64  `json:"total_cents"`
	PlacedAt     string `json:"placed_at"`
}

type orderResponse struct {
	OrderID                  string              `json:"order_id"`
	Number                   string              `json:"number"`
	RestaurantID             string              `json:"restaurant_id"`
	DriverID                 *string             `json:"driver_id"`
	Status                   string              `json:"status"`
	StatusText               string              `json:"status_text"`
	Address                  string              `json:"address"`
	Note                     string              `json:"note"`
	PaymentMethod            string              `json:"payment_method"`
	PaymentStatus            string              `json:"payment_status"`
	SubtotalCents            int64               `json:"subtotal_cents"`
	DeliveryCents            int64               `json:"delivery_fee_cents"`
	DiscountCents            int64               `json:"discount_cents"`
	TotalCents               int64               `json:"total_cents"`
	EstimatedDeliveryMinutes int                 `json:"estimated_delivery_minutes"`
	CancellationReason       string              `json:"cancellation_reason,omitempty"`
	PlacedAt                 string              `json:"placed_at"`
	Items                    []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
	Notes          string `json:"notes"`
}

type trackingEntryResponse struct {
	Status      string `json:"status"`
	StatusText  string `json:"status_text"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at"`
}

// GetOrders handles GET /api/v1/orders with page, page_size, and an optional
// status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "page_size", 20)

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, ok := parseOrderStatus(raw)
		if !ok {
			return badRequest(ctx, "unknown status filter")
		}
		statusFilter = &status
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID(), statusFilter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderSummaryResponse{
			OrderID:      o.ID.String(),
			Number:       o.Number,
			RestaurantID: o.RestaurantID.String(),
			Status:       o.Status,
			StatusText:   statusDisplayText(o.Status),
			TotalCents:   o.Total.Cents(),
			PlacedAt:     o.PlacedAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			MenuItemID:     item.MenuItemID.String(),
			Name:           item.Name,
			UnitPriceCents: item.UnitPrice.Cents(),
			Quantity:       item.Quantity,
			LineTotalCents: item.LineTotal.Cents(),
			Notes:          item.Notes,
		})
	}

	var driverID *string
	if o.DriverID != nil {
		id := o.DriverID.String()
		driverID = &id
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		OrderID:                  o.ID.String(),
		Number:                   o.Number,
		RestaurantID:             o.RestaurantID.String(),
		DriverID:                 driverID,
		Status:                   o.Status,
		StatusText:               statusDisplayText(o.Status),
		Address:                  o.Address,
		Note:                     o.Note,
		PaymentMethod:            o.PaymentMethod,
		PaymentStatus:            o.PaymentStatus,
		SubtotalCents:            o.Subtotal.Cents(),
		DeliveryCents:            o.DeliveryFee.Cents(),
		DiscountCents:            o.Discount.Cents(),
		TotalCents:               o.Total.Cents(),
		EstimatedDeliveryMinutes: o.EstimatedDeliveryMinutes,
		CancellationReason:       o.CancellationReason,
		PlacedAt:                 o.PlacedAt.Format(time.RFC3339),
		Items:                    items,
	})
}

// GetOrderTracking handles GET /api/v1/orders/:orderID/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]trackingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, trackingEntryResponse{
			Status:      entry.Status,
			StatusText:  statusDisplayText(entry.Status),
			Description: entry.Description,
			OccurredAt:  entry.OccurredAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewConfirmOrderCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), command)
	})
}

// StartPreparing handles POST /api/v1/orders/:orderID/prepare.
func (s *Server) StartPreparing(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewStartPreparingCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.startPreparingHandler.Handle(ctx.Request().Context(), command)
	})
}

// MarkOrderReady handles POST /api/v1/orders/:orderID/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewMarkOrderReadyCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.markOrderReadyHandler.Handle(ctx.Request().Context(), command)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request cancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	command, err := commands.NewCancelOrderCommand(orderID, actor, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// transition factors the shared shape of the bare status transition
// endpoints: resolve the actor and order ID, run the command, no body.
func (s *Server) transition(ctx echo.Context, run func(kernel.UUID, kernel.Actor) error) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	if err = run(orderID, actor); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
