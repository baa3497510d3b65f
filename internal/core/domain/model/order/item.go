package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is an immutable snapshot of a menu item at the moment the order was
// placed: name, unit price, and quantity are frozen so that later menu edits
// or availability changes never retroactively alter an existing order.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	lineTotal  kernel.Money
	notes      string

	guard guard.ConstructorGuard
}

// NewItem creates an order line snapshot. The line total is computed as
// unitPrice × quantity. Quantity must be positive and the name non-empty.
func NewItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	notes string,
) (Item, error) {
	item := Item{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	item.lineTotal = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs an Item from persistence, keeping the stored line
// total instead of recomputing it.
func RestoreItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	lineTotal kernel.Money,
	notes string,
) (Item, error) {
	item, err := NewItem(menuItemID, name, unitPrice, quantity, notes)
	if err != nil {
		return Item{}, err
	}

	if !item.lineTotal.IsEqual(lineTotal) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("line total",
			fmt.Errorf("%s does not equal %s × %d", lineTotal, unitPrice, quantity))
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identity.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name at the time of order.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the price per unit at the time of order.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unitPrice × quantity.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// Notes returns the customer's preparation notes for this line.
func (i Item) Notes() string {
	return i.notes
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
