package cart

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not
	// created through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

	// ErrCartIsEmpty is returned when checkout is attempted on an empty
	// cart.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Cart is the customer's mutable staging area before checkout. Each customer
// has at most one active cart, keyed to a single restaurant: adding an item
// from a different restaurant clears the existing items first.
//
// The cart holds unit-price snapshots for display only. Checkout re-fetches
// every menu item, so stale cart prices never leak into an order.
type Cart struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID *kernel.UUID
	items        []Item

	guard guard.ConstructorGuard
}

// Item is one mutable cart line.
type Item struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	Notes      string
}

// NewCart creates an empty cart for a customer.
func NewCart(id kernel.UUID, customerID kernel.UUID) (*Cart, error) {
	cart := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cart.setID(id),
		cart.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return cart, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(id kernel.UUID, customerID kernel.UUID, restaurantID *kernel.UUID, items []Item) (*Cart, error) {
	cart, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}

	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return nil, err
		}
		rID := *restaurantID
		cart.restaurantID = &rID
	}

	for _, item := range items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
	}
	cart.items = make([]Item, len(items))
	copy(cart.items, items)

	return cart, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's ID.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the cart is keyed to, or nil while
// empty.
func (c *Cart) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

// Items returns the cart lines. The returned slice is a copy.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal returns the display subtotal over the cart's price snapshots.
func (c *Cart) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, item := range c.items {
		subtotal = subtotal.Add(item.UnitPrice.MulQuantity(item.Quantity))
	}
	return subtotal
}

// AddItem puts an item into the cart. Adding from a different restaurant
// clears the cart first; adding the same menu item again merges quantities
// and keeps the latest notes and price snapshot.
func (c *Cart) AddItem(restaurantID kernel.UUID, item Item) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	if c.restaurantID == nil || !c.restaurantID.IsEqual(restaurantID) {
		c.items = nil
		c.restaurantID = &restaurantID
	}

	for i := range c.items {
		if c.items[i].MenuItemID.IsEqual(item.MenuItemID) {
			c.items[i].Quantity += item.Quantity
			c.items[i].UnitPrice = item.UnitPrice
			c.items[i].Notes = item.Notes
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItemQuantity changes a line's quantity. Zero removes the line; an
// empty cart loses its restaurant key. Fails when the menu item is not in
// the cart.
func (c *Cart) UpdateItemQuantity(menuItemID kernel.UUID, quantity int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	for i := range c.items {
		if !c.items[i].MenuItemID.IsEqual(menuItemID) {
			continue
		}

		if quantity == 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if len(c.items) == 0 {
				c.restaurantID = nil
			}
		} else {
			c.items[i].Quantity = quantity
		}
		return nil
	}

	return errs.NewObjectNotFoundError("menu item in cart", menuItemID)
}

// Clear removes all items and the restaurant key.
func (c *Cart) Clear() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.items = nil
	c.restaurantID = nil
	return nil
}

func validateItem(item Item) error {
	if err := item.MenuItemID.Validate(); err != nil {
		return err
	}
	if item.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if item.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", item.Quantity))
	}
	return nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
