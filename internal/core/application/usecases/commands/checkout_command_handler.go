package commands

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/voucher"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ErrRestaurantClosed is returned when checkout is attempted against a
// closed restaurant.
var ErrRestaurantClosed = errors.New("restaurant is closed")

const (
	// orderNumberAttempts bounds retries on an order number collision.
	orderNumberAttempts = 5

	// Delivery estimate: fixed preparation time plus a per-kilometer share.
	estimateBaseMinutes  = 20
	estimateMinutesPerKm = 3.0
)

// CheckoutCommandHandler converts a cart into an order. It re-validates the
// restaurant and every menu item live, prices the order, evaluates the
// voucher, and persists the order, the voucher usage, and the cart deletion
// in one transaction. Domain events are published after commit.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	restaurants ports.RestaurantGateway
	publisher   ports.EventPublisher
	pricing     services.PricingEngine
}

// NewCheckoutCommandHandler creates a handler for checkout.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	restaurants ports.RestaurantGateway,
	publisher ports.EventPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		publisher:   publisher,
		pricing:     services.NewPricingEngine(),
	}
}

// Handle processes the checkout. Order number collisions retry with a fresh
// number inside the same transaction (the repository isolates each insert
// behind a savepoint); any other failure rejects the whole checkout with
// nothing persisted.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerCart, err := uow.CartRepository().GetByCustomer(ctx, command.CustomerID())
	if err != nil {
		return nil, err
	}
	if customerCart.IsEmpty() || customerCart.RestaurantID() == nil {
		return nil, order.ErrOrderHasNoItems
	}

	restaurant, err := h.restaurants.GetRestaurant(ctx, *customerCart.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !restaurant.IsOpen {
		return nil, ErrRestaurantClosed
	}

	lines, err := h.fetchLines(ctx, customerCart.Items())
	if err != nil {
		return nil, err
	}

	subtotal := sumLines(lines)
	now := time.Now()

	var appliedVoucher *voucher.Voucher
	var discount kernel.Money
	if command.VoucherCode() != "" {
		appliedVoucher, err = uow.VoucherRepository().GetByCode(ctx, command.VoucherCode())
		if err != nil {
			return nil, err
		}

		discount, err = appliedVoucher.Evaluate(subtotal, restaurant.DeliveryFee, now)
		if err != nil {
			return nil, err
		}
	}

	quote, err := h.pricing.Price(lines, restaurant.DeliveryFee, discount)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(command.Address(), command.Location(), command.Note())
	if err != nil {
		return nil, err
	}

	tripKm, err := restaurant.Location.DistanceKm(command.Location())
	if err != nil {
		return nil, err
	}

	var voucherID *kernel.UUID
	if appliedVoucher != nil {
		id := appliedVoucher.ID()
		voucherID = &id

		if err := appliedVoucher.MarkUsed(); err != nil {
			return nil, err
		}
		if err := uow.VoucherRepository().Update(ctx, appliedVoucher); err != nil {
			return nil, err
		}
	}

	newOrder, err := h.persistOrder(ctx, uow, command, *customerCart.RestaurantID(), destination, quote, voucherID, tripKm, now)
	if err != nil {
		return nil, err
	}

	if err := uow.CartRepository().Delete(ctx, command.CustomerID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publish(ctx, newOrder)
	return newOrder, nil
}

// persistOrder creates and stores the order, regenerating the order number
// on a uniqueness collision.
func (h CheckoutCommandHandler) persistOrder(
	ctx context.Context,
	uow CheckoutUoW,
	command CheckoutCommand,
	restaurantID kernel.UUID,
	destination order.Destination,
	quote services.Quote,
	voucherID *kernel.UUID,
	tripKm float64,
	now time.Time,
) (*order.Order, error) {
	estimate := estimateBaseMinutes + int(math.Round(tripKm*estimateMinutesPerKm))

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		newOrder, err := order.NewOrder(
			kernel.NewUUID(),
			order.GenerateNumber(now),
			command.CustomerID(),
			restaurantID,
			destination,
			quote.Items,
			command.PaymentMethod(),
			quote.Pricing,
			voucherID,
			estimate,
			now,
		)
		if err != nil {
			return nil, err
		}

		err = uow.OrderRepository().Add(ctx, newOrder)
		if errors.Is(err, order.ErrOrderNumberTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return newOrder, nil
	}

	return nil, order.ErrOrderNumberTaken
}

func (h CheckoutCommandHandler) fetchLines(ctx context.Context, items []cart.Item) ([]services.PriceLine, error) {
	lines := make([]services.PriceLine, 0, len(items))
	for _, item := range items {
		menuItem, err := h.restaurants.GetMenuItem(ctx, item.MenuItemID)
		if err != nil {
			return nil, err
		}

		lines = append(lines, services.PriceLine{
			MenuItemID:  menuItem.ID,
			Name:        menuItem.Name,
			UnitPrice:   menuItem.Price,
			Quantity:    item.Quantity,
			IsAvailable: menuItem.IsAvailable,
			Notes:       item.Notes,
		})
	}
	return lines, nil
}

func (h CheckoutCommandHandler) publish(ctx context.Context, newOrder *order.Order) {
	if err := h.publisher.Publish(ctx, newOrder.Events()); err != nil {
		slog.Warn("failed to publish order events",
			slog.String("order", newOrder.Number()),
			slog.Any("error", err))
		return
	}
	newOrder.ClearEvents()
}

func sumLines(lines []services.PriceLine) kernel.Money {
	var subtotal kernel.Money
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.MulQuantity(line.Quantity))
	}
	return subtotal
}
