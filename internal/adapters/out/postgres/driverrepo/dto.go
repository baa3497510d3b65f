// Package driverrepo persists driver aggregates and their earnings ledger.
package driverrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure of a driver aggregate.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string `gorm:"size:20"`
	IsApproved      bool
	Status          int `gorm:"index"`
	Latitude        *float64
	Longitude       *float64
	WalletCents     int64
	Rating          float64
	TotalDeliveries int
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// EarningDTO represents one row of the append-only earnings ledger.
type EarningDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID    uuid.UUID  `gorm:"type:uuid;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid"`
	Type        int
	AmountCents int64
	Description string
	EarnedAt    time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "driver_earnings".
func (EarningDTO) TableName() string {
	return "driver_earnings"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		latitude = &lat
		longitude = &lng
	}

	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		IsApproved:      aggregate.IsApproved(),
		Status:          int(aggregate.Status()),
		Latitude:        latitude,
		Longitude:       longitude,
		WalletCents:     aggregate.Wallet().Cents(),
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	wallet, err := kernel.NewMoney(dto.WalletCents)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id, dto.Name, dto.Phone,
		dto.IsApproved, driver.Status(dto.Status), location,
		wallet, dto.Rating, dto.TotalDeliveries,
	)
}

func earningFromDomain(earning driver.Earning) EarningDTO {
	var orderID *uuid.UUID
	if o := earning.OrderID(); o != nil {
		raw := o.Bytes()
		orderID = &raw
	}

	return EarningDTO{
		ID:          earning.ID().Bytes(),
		DriverID:    earning.DriverID().Bytes(),
		OrderID:     orderID,
		Type:        int(earning.Type()),
		AmountCents: earning.Amount().Cents(),
		Description: earning.Description(),
		EarnedAt:    earning.EarnedAt(),
	}
}

