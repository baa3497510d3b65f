package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addToCartRequest struct {
	RestaurantID string `json:"restaurant_id"`
	MenuItemID   string `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Note          string  `json:"note"`
	PaymentMethod string  `json:"payment_method"`
	VoucherCode   string  `json:"voucher_code"`
}

type checkoutResponse struct {
	OrderID       string `json:"order_id"`
	Number        string `json:"number"`
	Status        string `json:"status"`
	StatusText    string `json:"status_text"`
	SubtotalCents int64  `json:"subtotal_cents"`
	DeliveryCents int64  `json:"delivery_fee_cents"`
	DiscountCents int64  `json:"discount_cents"`
	TotalCents    int64  `json:"total_cents"`
	PlacedAt      string `json:"placed_at"`
}

type cartResponse struct {
	RestaurantID  *string            `json:"restaurant_id"`
	Items         []cartItemResponse `json:"items"`
	SubtotalCents int64              `json:"subtotal_cents"`
}

type cartItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
	Notes          string `json:"notes"`
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := cartResponse{
		Items:         make([]cartItemResponse, 0, len(cart.Items)),
		SubtotalCents: cart.Subtotal.Cents(),
	}
	if cart.RestaurantID != nil {
		id := cart.RestaurantID.String()
		response.RestaurantID = &id
	}
	for _, item := range cart.Items {
		response.Items = append(response.Items, cartItemResponse{
			MenuItemID:     item.MenuItemID.String(),
			Name:           item.Name,
			UnitPriceCents: item.UnitPrice.Cents(),
			Quantity:       item.Quantity,
			LineTotalCents: item.LineTotal.Cents(),
			Notes:          item.Notes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request addToCartRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant_id")
	}
	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "invalid menu_item_id")
	}

	command, err := commands.NewAddToCartCommand(
		actor.ID(), restaurantID, menuItemID, request.Quantity, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:menuItemID. A quantity of
// zero or less removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID, err := pathUUID(ctx, "menuItemID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request updateCartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	command, err := commands.NewUpdateCartItemCommand(actor.ID(), menuItemID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCartItemHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewClearCartCommand(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout, converting the caller's cart into
// an order.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request checkoutRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentMethod, ok := parsePaymentMethod(request.PaymentMethod)
	if !ok {
		return badRequest(ctx, "unknown payment_method")
	}

	command, err := commands.NewCheckoutCommand(
		actor.ID(), request.Address, location, request.Note, paymentMethod, request.VoucherCode)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	status := placed.Status().String()
	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:       placed.ID().String(),
		Number:        placed.Number(),
		Status:        status,
		StatusText:    statusDisplayText(status),
		SubtotalCents: placed.Pricing().Subtotal().Cents(),
		DeliveryCents: placed.Pricing().DeliveryFee().Cents(),
		DiscountCents: placed.Pricing().Discount().Cents(),
		TotalCents:    placed.Pricing().Total().Cents(),
		PlacedAt:      placed.PlacedAt().Format(time.RFC3339),
	})
}
