package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testDestination(t *testing.T) order.Destination {
	t.Helper()
	point, err := kernel.NewGeoPoint(10.7769, 106.7009)
	require.NoError(t, err)
	destination, err := order.NewDestination("123 Le Loi, District 1", point, "")
	require.NoError(t, err)
	return destination
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Pho Bo", kernel.NewMoneyFromUnits(65_000), 2, "")
	require.NoError(t, err)
	return []order.Item{item}
}

// orderInStatus restores an order directly into the wanted status, with the
// given driver when the status implies assignment.
func orderInStatus(t *testing.T, status order.Status, customerID kernel.UUID, restaurantID kernel.UUID, driverID *kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:            kernel.NewUUID(),
		Number:        order.GenerateNumber(time.Now()),
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		DriverID:      driverID,
		Destination:   testDestination(t),
		Items:         testItems(t),
		PaymentMethod: order.PaymentMethodCash,
		PaymentStatus: order.PaymentPending,
		Pricing: order.NewPricing(
			kernel.NewMoneyFromUnits(130_000),
			kernel.NewMoneyFromUnits(18_000),
			kernel.Money{},
		),
		Status:   status,
		PlacedAt: time.Now(),
	})
	require.NoError(t, err)
	return o
}

func matchableTestDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	point, err := kernel.NewGeoPoint(10.7800, 106.6990)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(
		id, "Nguyen Van A", "+84901234567",
		true, driver.Online, &point,
		kernel.Money{}, 5.0, 0,
	)
	require.NoError(t, err)
	return d
}

func driverActorFor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleDriver)
	require.NoError(t, err)
	return actor
}
