// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence; domain events are published after
// the transaction commits.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the narrowest unit of work its
// operation needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VoucherRepoFactory provides access to the voucher repository within a
	// transaction.
	VoucherRepoFactory interface {
		VoucherRepository() ports.VoucherRepository
	}

	// CartRepoFactory provides access to the cart repository within a
	// transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderUoW manages transactions for order-only operations: the
	// restaurant lifecycle transitions and customer cancellation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderDriverUoW manages transactions spanning order and driver
	// aggregates: job acceptance and delivery completion.
	OrderDriverUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// OrderDriverUoWFactory creates new order+driver unit of work
	// instances.
	OrderDriverUoWFactory interface {
		Create() OrderDriverUoW
	}

	// DriverUoW manages transactions for driver-only operations: status
	// updates and withdrawals.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VoucherUoW manages transactions for voucher-only operations.
	VoucherUoW interface {
		TxManager
		VoucherRepoFactory
	}

	// VoucherUoWFactory creates new voucher unit of work instances.
	VoucherUoWFactory interface {
		Create() VoucherUoW
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans every aggregate the checkout touches: the new
	// order, the consumed voucher, and the deleted cart commit together.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		VoucherRepoFactory
		CartRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
