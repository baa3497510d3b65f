package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"
)

var ErrExpireVouchersCommandIsNotConstructed = errors.New(
	"ExpireVouchersCommand must be created via NewExpireVouchersCommand constructor",
)

// ExpireVouchersCommand deactivates active vouchers whose validity window
// has passed. Issued periodically by the background job scheduler.
type ExpireVouchersCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireVouchersCommand creates a validated command for the given point
// in time.
func NewExpireVouchersCommand(now time.Time) ExpireVouchersCommand {
	return ExpireVouchersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Now returns the expiry cutoff.
func (c *ExpireVouchersCommand) Now() time.Time {
	return c.now
}

// Validate ensures the command was created through the constructor.
func (c *ExpireVouchersCommand) Validate() error {
	return c.guard.Validate(ErrExpireVouchersCommandIsNotConstructed)
}
