package orderrepo_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the conditional driver assignment.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// Open through lib/pq like the composition root does, so unique
	// violation detection sees the same driver errors as production.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TrackingDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_tracking").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	placed := suite.placedOrder("#2608151234")

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	retrieved, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.True(placed.ID().IsEqual(retrieved.ID()))
	suite.Equal("#2608151234", retrieved.Number())
	suite.True(placed.CustomerID().IsEqual(retrieved.CustomerID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Equal(order.PaymentMethodMoMo, retrieved.PaymentMethod())
	suite.Equal("12 Nguyen Hue, District 1", retrieved.Destination().Address())

	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("Pho Bo", retrieved.Items()[0].Name())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.True(retrieved.Items()[0].UnitPrice().IsEqual(kernel.NewMoneyFromUnits(65_000)))
	suite.True(retrieved.Items()[0].LineTotal().IsEqual(kernel.NewMoneyFromUnits(130_000)))

	suite.True(retrieved.Pricing().Subtotal().IsEqual(kernel.NewMoneyFromUnits(165_000)))
	suite.True(retrieved.Pricing().Total().IsEqual(kernel.NewMoneyFromUnits(183_000)))

	suite.Require().Len(retrieved.Tracking(), 1)
	suite.Equal(order.Pending, retrieved.Tracking()[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsNumberTaken() {
	ctx := context.Background()

	first := suite.placedOrder("#2608159999")
	second := suite.placedOrder("#2608159999")

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, order.ErrOrderNumberTaken)
}

// TestAdd_CollisionInsideTransaction_RetrySucceeds checks that a number
// collision does not poison the surrounding transaction: the savepoint in Add
// lets a second insert with a fresh number go through and commit.
func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_CollisionInsideTransaction_RetrySucceeds() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.placedOrder("#2608158888")))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	txRepo := orderrepo.NewGormOrderRepository(tx)

	err := txRepo.Add(ctx, suite.placedOrder("#2608158888"))
	suite.Require().ErrorIs(err, order.ErrOrderNumberTaken)

	retried := suite.placedOrder("#2608150042")
	suite.Require().NoError(txRepo.Add(ctx, retried))
	suite.Require().NoError(tx.Commit().Error)

	persisted, err := suite.repository.Get(ctx, retried.ID())
	suite.Require().NoError(err)
	suite.Equal("#2608150042", persisted.Number())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndTracking() {
	ctx := context.Background()
	placed := suite.placedOrder("#2608151111")
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	merchant, err := kernel.NewActor(placed.RestaurantID(), kernel.RoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(placed.Confirm(merchant, time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, placed))

	retrieved, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.NotNil(retrieved.ConfirmedAt())
	suite.Require().Len(retrieved.Tracking(), 2)
	suite.Equal(order.Confirmed, retrieved.Tracking()[1].Status())
}

// TestUpdate_AppendsTrackingWithoutRewriting checks the storage side of the
// append-only ledger: rows written earlier keep their ids across updates.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsTrackingWithoutRewriting() {
	ctx := context.Background()
	placed := suite.placedOrder("#2608156060")
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	var initial []orderrepo.TrackingDTO
	suite.Require().NoError(
		suite.db.Where("order_id = ?", placed.ID().Bytes()).Order("id").Find(&initial).Error)
	suite.Require().Len(initial, 1)

	merchant, err := kernel.NewActor(placed.RestaurantID(), kernel.RoleMerchant)
	suite.Require().NoError(err)
	suite.Require().NoError(placed.Confirm(merchant, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, placed))

	var after []orderrepo.TrackingDTO
	suite.Require().NoError(
		suite.db.Where("order_id = ?", placed.ID().Bytes()).Order("id").Find(&after).Error)
	suite.Require().Len(after, 2)
	suite.Equal(initial[0].ID, after[0].ID)
	suite.Equal(initial[0].Description, after[0].Description)
	suite.Equal(order.Confirmed, order.Status(after[1].Status))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.placedOrder("#2608152222"))

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetReadyForPickup_FiltersAndOrders() {
	ctx := context.Background()

	oldest := suite.readyOrder("#2608153333", time.Now().Add(-2*time.Hour))
	newest := suite.readyOrder("#2608154444", time.Now().Add(-1*time.Hour))
	pending := suite.placedOrder("#2608155555")

	suite.Require().NoError(suite.repository.Add(ctx, newest))
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	ready, err := suite.repository.GetReadyForPickup(ctx, 5)
	suite.Require().NoError(err)

	suite.Require().Len(ready, 2)
	suite.True(oldest.ID().IsEqual(ready[0].ID()))
	suite.True(newest.ID().IsEqual(ready[1].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetReadyForPickup_HonorsLimit() {
	ctx := context.Background()
	for i := range 7 {
		o := suite.readyOrder(order.GenerateNumber(time.Now()), time.Now().Add(-time.Duration(i)*time.Minute))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	ready, err := suite.repository.GetReadyForPickup(ctx, 5)
	suite.Require().NoError(err)
	suite.Len(ready, 5)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_ClaimsUnassignedOrder() {
	ctx := context.Background()
	ready := suite.readyOrder("#2608156666", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	driverID := kernel.NewUUID()
	driverActor, err := kernel.NewActor(driverID, kernel.RoleDriver)
	suite.Require().NoError(err)
	suite.Require().NoError(ready.AssignDriver(driverActor, time.Now()))

	suite.Require().NoError(suite.repository.AssignDriver(ctx, ready))

	retrieved, err := suite.repository.Get(ctx, ready.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.True(driverID.IsEqual(*retrieved.DriverID()))
}

// TestAssignDriver_ConcurrentClaims_ExactlyOneWinner drives the acceptance
// race: several drivers claim the same order at once and the conditional
// update must let exactly one through.
func (suite *OrderRepositoryIntegrationTestSuite) TestAssignDriver_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	ready := suite.readyOrder("#2608157777", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	const contenders = 5
	results := make(chan error, contenders)
	var wg sync.WaitGroup

	for range contenders {
		claimed, err := suite.repository.Get(ctx, ready.ID())
		suite.Require().NoError(err)

		driverActor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDriver)
		suite.Require().NoError(err)
		suite.Require().NoError(claimed.AssignDriver(driverActor, time.Now()))

		wg.Add(1)
		go func(aggregate *order.Order) {
			defer wg.Done()
			results <- suite.repository.AssignDriver(ctx, aggregate)
		}(claimed)
	}

	wg.Wait()
	close(results)

	var winners, losers int
	for err := range results {
		switch {
		case err == nil:
			winners++
		default:
			suite.Require().ErrorIs(err, order.ErrAlreadyAssigned)
			losers++
		}
	}

	suite.Equal(1, winners)
	suite.Equal(contenders-1, losers)
}

func (suite *OrderRepositoryIntegrationTestSuite) placedOrder(number string) *order.Order {
	point, err := kernel.NewGeoPoint(10.7731, 106.7040)
	suite.Require().NoError(err)
	destination, err := order.NewDestination("12 Nguyen Hue, District 1", point, "gate code 1234")
	suite.Require().NoError(err)

	pho, err := order.NewItem(kernel.NewUUID(), "Pho Bo", kernel.NewMoneyFromUnits(65_000), 2, "")
	suite.Require().NoError(err)
	tra, err := order.NewItem(kernel.NewUUID(), "Tra Da", kernel.NewMoneyFromUnits(35_000), 1, "less ice")
	suite.Require().NoError(err)

	pricing := order.NewPricing(
		kernel.NewMoneyFromUnits(165_000),
		kernel.NewMoneyFromUnits(18_000),
		kernel.Money{},
	)

	placed, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
		destination, []order.Item{pho, tra},
		order.PaymentMethodMoMo, pricing, nil, 35, time.Now(),
	)
	suite.Require().NoError(err)
	return placed
}

func (suite *OrderRepositoryIntegrationTestSuite) readyOrder(number string, placedAt time.Time) *order.Order {
	point, err := kernel.NewGeoPoint(10.7731, 106.7040)
	suite.Require().NoError(err)
	destination, err := order.NewDestination("12 Nguyen Hue, District 1", point, "")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Com Tam", kernel.NewMoneyFromUnits(55_000), 1, "")
	suite.Require().NoError(err)

	ready, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:            kernel.NewUUID(),
		Number:        number,
		CustomerID:    kernel.NewUUID(),
		RestaurantID:  kernel.NewUUID(),
		Destination:   destination,
		Items:         []order.Item{item},
		PaymentMethod: order.PaymentMethodCash,
		PaymentStatus: order.PaymentPending,
		Pricing: order.NewPricing(
			kernel.NewMoneyFromUnits(55_000),
			kernel.NewMoneyFromUnits(15_000),
			kernel.Money{},
		),
		Status:   order.ReadyForPickup,
		PlacedAt: placedAt,
		Tracking: []order.TrackingEntry{
			order.NewTrackingEntry(order.Pending, "Order placed, waiting for restaurant confirmation", placedAt),
			order.NewTrackingEntry(order.ReadyForPickup, "Order is ready for pickup", placedAt),
		},
	})
	suite.Require().NoError(err)
	return ready
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
