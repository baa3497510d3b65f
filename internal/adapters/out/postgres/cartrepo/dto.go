// Package cartrepo persists cart aggregates. A cart is replaced wholesale on
// every save; its items carry the price snapshot taken when the customer
// added them.
package cartrepo

import (
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure of a cart aggregate. One cart
// per customer.
type CartDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`

	Items []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one line of a cart.
type CartItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	CartID         uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID     uuid.UUID `gorm:"type:uuid"`
	Name           string
	UnitPriceCents int64
	Quantity       int
	Notes          string
}

// TableName overrides GORM's default naming to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	id := aggregate.ID().Bytes()

	var restaurantID *uuid.UUID
	if r := aggregate.RestaurantID(); r != nil {
		raw := r.Bytes()
		restaurantID = &raw
	}

	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartID:         id,
			MenuItemID:     item.MenuItemID.Bytes(),
			Name:           item.Name,
			UnitPriceCents: item.UnitPrice.Cents(),
			Quantity:       item.Quantity,
			Notes:          item.Notes,
		})
	}

	return CartDTO{
		ID:           id,
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: restaurantID,
		Items:        items,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		raw, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}
		restaurantID = &raw
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, cart.Item{
			MenuItemID: menuItemID,
			Name:       itemDTO.Name,
			UnitPrice:  unitPrice,
			Quantity:   itemDTO.Quantity,
			Notes:      itemDTO.Notes,
		})
	}

	return cart.RestoreCart(id, customerID, restaurantID, items)
}
