package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrItemUnavailable is returned when any line references a menu item that is
// not available at order placement time. One unavailable item rejects the
// whole order.
var ErrItemUnavailable = errors.New("menu item is not available")

// PriceLine is one pricing input: a menu item as fetched at order placement
// time plus the requested quantity.
type PriceLine struct {
	MenuItemID  kernel.UUID
	Name        string
	UnitPrice   kernel.Money
	Quantity    int
	IsAvailable bool
	Notes       string
}

// Quote is the pricing engine's output: the order item snapshots and the
// money breakdown the order will be created with.
type Quote struct {
	Items   []order.Item
	Pricing order.Pricing
}

// PricingEngine is a domain service computing the money breakdown for an
// order. It is a pure computation over provided inputs: menu items are
// fetched by the caller, vouchers are evaluated by the caller, and the engine
// never performs I/O.
//
// Rules:
//   - subtotal is the sum of unitPrice × quantity over all lines
//   - any unavailable line rejects the whole order
//   - the total clamps at zero, a discount never produces a negative total
//
// Free shipping is handled entirely by the voucher evaluator: the breakdown
// keeps the restaurant's delivery fee and the discount offsets it, so the fee
// is never zeroed here and never discounted twice.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the quote for the given lines, delivery fee, and an already
// evaluated voucher discount. Pass a zero discount for the no-voucher path.
func (p PricingEngine) Price(
	lines []PriceLine,
	deliveryFee kernel.Money,
	discount kernel.Money,
) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, order.ErrOrderHasNoItems
	}

	var unavailable []string
	items := make([]order.Item, 0, len(lines))
	var subtotal kernel.Money

	for _, line := range lines {
		if !line.IsAvailable {
			unavailable = append(unavailable, line.Name)
			continue
		}

		item, err := order.NewItem(line.MenuItemID, line.Name, line.UnitPrice, line.Quantity, line.Notes)
		if err != nil {
			return Quote{}, err
		}

		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}

	if len(unavailable) > 0 {
		return Quote{}, fmt.Errorf("%w: %v", ErrItemUnavailable, unavailable)
	}

	return Quote{
		Items:   items,
		Pricing: order.NewPricing(subtotal, deliveryFee, discount),
	}, nil
}
