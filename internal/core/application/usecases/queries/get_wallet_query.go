package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

// getWalletRecentEarnings bounds the ledger entries returned with the
// balance.
const getWalletRecentEarnings = 20

// GetWalletQuery retrieves a driver's wallet balance together with recent
// earnings.
type GetWalletQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletQuery creates a validated query.
func NewGetWalletQuery(driverID kernel.UUID) (GetWalletQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetWalletQuery{}, err
	}

	return GetWalletQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the driver whose wallet is requested.
func (q GetWalletQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

// GetWalletQueryResponse represents a driver's wallet state. EarnedToday
// covers the current calendar day; EarnedThisWeek is a rolling seven days.
type GetWalletQueryResponse struct {
	Balance         kernel.Money
	EarnedToday     kernel.Money
	EarnedThisWeek  kernel.Money
	TotalDeliveries int
	RecentEarnings  []GetWalletEarningResponse
}

// GetWalletEarningResponse represents one earnings ledger entry.
type GetWalletEarningResponse struct {
	OrderID     *kernel.UUID
	Type        string
	Amount      kernel.Money
	Description string
	EarnedAt    time.Time
}
