// Package http is the inbound HTTP adapter. It translates requests into
// commands and queries, resolves the acting identity from the gateway's
// auth headers, and renders responses with customer-facing status texts.
package http

import (
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers set by the API gateway after authenticating the caller. Auth
// itself is an external collaborator; the adapter only trusts these values.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server routes HTTP requests to the application's command and query
// handlers.
type Server struct {
	// Command handlers
	addToCartHandler          commands.AddToCartCommandHandler
	updateCartItemHandler     commands.UpdateCartItemCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	confirmOrderHandler       commands.ConfirmOrderCommandHandler
	startPreparingHandler     commands.StartPreparingCommandHandler
	markOrderReadyHandler     commands.MarkOrderReadyCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	acceptJobHandler          commands.AcceptJobCommandHandler
	declineJobHandler         commands.DeclineJobCommandHandler
	startDeliveryHandler      commands.StartDeliveryCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	updateDriverStatusHandler commands.UpdateDriverStatusCommandHandler
	withdrawHandler           commands.WithdrawCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getOrderTrackingHandler   queries.GetOrderTrackingQueryHandler
	getPendingJobsHandler     queries.GetPendingJobsQueryHandler
	getWalletHandler          queries.GetWalletQueryHandler
	getCartHandler            queries.GetCartQueryHandler
	validateVoucherHandler    queries.ValidateVoucherQueryHandler
}

// ServerParams bundles the handlers a Server needs.
type ServerParams struct {
	AddToCart          commands.AddToCartCommandHandler
	UpdateCartItem     commands.UpdateCartItemCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	ConfirmOrder       commands.ConfirmOrderCommandHandler
	StartPreparing     commands.StartPreparingCommandHandler
	MarkOrderReady     commands.MarkOrderReadyCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	AcceptJob          commands.AcceptJobCommandHandler
	DeclineJob         commands.DeclineJobCommandHandler
	StartDelivery      commands.StartDeliveryCommandHandler
	CompleteDelivery   commands.CompleteDeliveryCommandHandler
	UpdateDriverStatus commands.UpdateDriverStatusCommandHandler
	Withdraw           commands.WithdrawCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetOrderTracking  queries.GetOrderTrackingQueryHandler
	GetPendingJobs    queries.GetPendingJobsQueryHandler
	GetWallet         queries.GetWalletQueryHandler
	GetCart           queries.GetCartQueryHandler
	ValidateVoucher   queries.ValidateVoucherQueryHandler
}

// NewServer creates a server over the given handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		addToCartHandler:          params.AddToCart,
		updateCartItemHandler:     params.UpdateCartItem,
		clearCartHandler:          params.ClearCart,
		checkoutHandler:           params.Checkout,
		confirmOrderHandler:       params.ConfirmOrder,
		startPreparingHandler:     params.StartPreparing,
		markOrderReadyHandler:     params.MarkOrderReady,
		cancelOrderHandler:        params.CancelOrder,
		acceptJobHandler:          params.AcceptJob,
		declineJobHandler:         params.DeclineJob,
		startDeliveryHandler:      params.StartDelivery,
		completeDeliveryHandler:   params.CompleteDelivery,
		updateDriverStatusHandler: params.UpdateDriverStatus,
		withdrawHandler:           params.Withdraw,
		getOrderHandler:           params.GetOrder,
		getCustomerOrdersHandler:  params.GetCustomerOrders,
		getOrderTrackingHandler:   params.GetOrderTracking,
		getPendingJobsHandler:     params.GetPendingJobs,
		getWalletHandler:          params.GetWallet,
		getCartHandler:            params.GetCart,
		validateVoucherHandler:    params.ValidateVoucher,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddToCart)
	api.PATCH("/cart/items/:menuItemID", s.UpdateCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.GET("/orders/:orderID/tracking", s.GetOrderTracking)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/prepare", s.StartPreparing)
	api.POST("/orders/:orderID/ready", s.MarkOrderReady)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.GET("/jobs", s.GetPendingJobs)
	api.POST("/jobs/:orderID/accept", s.AcceptJob)
	api.POST("/jobs/:orderID/decline", s.DeclineJob)
	api.POST("/deliveries/:orderID/start", s.StartDelivery)
	api.POST("/deliveries/:orderID/complete", s.CompleteDelivery)

	api.PUT("/driver/status", s.UpdateDriverStatus)
	api.GET("/driver/wallet", s.GetWallet)
	api.POST("/driver/wallet/withdraw", s.Withdraw)

	api.POST("/vouchers/validate", s.ValidateVoucher)
}

// actorFromHeaders resolves the acting identity from the gateway headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsRequiredError(headerUserID)
	}

	role, ok := parseRole(ctx.Request().Header.Get(headerUserRole))
	if !ok {
		return kernel.Actor{}, errs.NewValueIsRequiredError(headerUserRole)
	}

	return kernel.NewActor(id, role)
}

func parseRole(value string) (kernel.Role, bool) {
	switch strings.ToLower(value) {
	case "customer":
		return kernel.RoleCustomer, true
	case "merchant":
		return kernel.RoleMerchant, true
	case "driver":
		return kernel.RoleDriver, true
	case "admin":
		return kernel.RoleAdmin, true
	default:
		return kernel.RoleUnknown, false
	}
}

func parsePaymentMethod(value string) (order.PaymentMethod, bool) {
	switch strings.ToLower(value) {
	case "cash":
		return order.PaymentMethodCash, true
	case "momo":
		return order.PaymentMethodMoMo, true
	case "zalopay":
		return order.PaymentMethodZaloPay, true
	case "card":
		return order.PaymentMethodCard, true
	default:
		return order.PaymentMethodUnknown, false
	}
}

func parseDriverStatus(value string) (driver.Status, bool) {
	switch strings.ToLower(value) {
	case "online":
		return driver.Online, true
	case "offline":
		return driver.Offline, true
	default:
		return driver.StatusUnknown, false
	}
}

func parseOrderStatus(value string) (order.Status, bool) {
	for status, name := range map[order.Status]string{
		order.Pending:        order.Pending.String(),
		order.Confirmed:      order.Confirmed.String(),
		order.Preparing:      order.Preparing.String(),
		order.ReadyForPickup: order.ReadyForPickup.String(),
		order.PickedUp:       order.PickedUp.String(),
		order.Delivering:     order.Delivering.String(),
		order.Delivered:      order.Delivered.String(),
		order.Cancelled:      order.Cancelled.String(),
	} {
		if strings.EqualFold(value, name) {
			return status, true
		}
	}
	return order.StatusUnknown, false
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "invalid_request",
		Message: message,
	})
}
