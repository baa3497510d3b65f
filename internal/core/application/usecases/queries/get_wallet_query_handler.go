package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWalletQueryHandler retrieves a driver's wallet balance and recent
// ledger entries from the database.
type GetWalletQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletQueryHandler creates a handler for wallet queries.
func NewGetWalletQueryHandler(db *gorm.DB) GetWalletQueryHandler {
	return GetWalletQueryHandler{db: db}
}

// Handle executes the query.
func (h GetWalletQueryHandler) Handle(ctx context.Context, query GetWalletQuery) (GetWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletQueryResponse{}, err
	}

	var walletCents int64
	var totalDeliveries int

	row := h.db.WithContext(ctx).Raw(`
		SELECT wallet_cents, total_deliveries
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Row()

	if err := row.Scan(&walletCents, &totalDeliveries); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWalletQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
		}
		return GetWalletQueryResponse{}, err
	}

	balance, err := kernel.NewMoney(walletCents)
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	earnedToday, err := h.sumEarningsSince(ctx, query.DriverID(), startOfDay)
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	earnedThisWeek, err := h.sumEarningsSince(ctx, query.DriverID(), now.AddDate(0, 0, -7))
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	earnings, err := h.loadRecentEarnings(ctx, query.DriverID())
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	return GetWalletQueryResponse{
		Balance:         balance,
		EarnedToday:     earnedToday,
		EarnedThisWeek:  earnedThisWeek,
		TotalDeliveries: totalDeliveries,
		RecentEarnings:  earnings,
	}, nil
}

func (h GetWalletQueryHandler) sumEarningsSince(
	ctx context.Context,
	driverID kernel.UUID,
	since time.Time,
) (kernel.Money, error) {
	var totalCents int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM driver_earnings
		WHERE driver_id = ? AND earned_at >= ?
	`, driverID.Bytes(), since).Row()

	if err := row.Scan(&totalCents); err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(totalCents)
}

func (h GetWalletQueryHandler) loadRecentEarnings(ctx context.Context, driverID kernel.UUID) ([]GetWalletEarningResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, type, amount_cents, description, earned_at
		FROM driver_earnings
		WHERE driver_id = ?
		ORDER BY earned_at DESC
		LIMIT ?
	`, driverID.Bytes(), getWalletRecentEarnings).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earnings := make([]GetWalletEarningResponse, 0)
	for rows.Next() {
		var orderID uuid.NullUUID
		var etype int
		var amountCents int64
		var description string
		var earnedAt time.Time

		if err = rows.Scan(&orderID, &etype, &amountCents, &description, &earnedAt); err != nil {
			return nil, err
		}

		amount, amountErr := kernel.NewMoney(amountCents)
		if amountErr != nil {
			return nil, amountErr
		}

		var order *kernel.UUID
		if orderID.Valid {
			id, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			order = &id
		}

		earnings = append(earnings, GetWalletEarningResponse{
			OrderID:     order,
			Type:        driver.EarningType(etype).String(),
			Amount:      amount,
			Description: description,
			EarnedAt:    earnedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return earnings, nil
}
