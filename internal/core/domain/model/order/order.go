package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAlreadyAssigned is returned when a driver tries to claim an order
	// that already has a driver. Also used by the persistence layer to report
	// a lost accept race.
	ErrAlreadyAssigned = errors.New("order is already assigned to a driver")

	// ErrOrderHasNoItems is returned when an order is created with an empty
	// item list.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root for a customer's order. It owns the full
// lifecycle from checkout through delivery or cancellation, the money
// breakdown fixed at checkout, the item snapshots, and the append-only
// tracking history.
//
// Order maintains these invariants:
//   - Status transitions follow the rules encoded in Status
//   - Every status change appends exactly one tracking entry and records
//     exactly one domain event
//   - Items, pricing, and destination are immutable after checkout
//   - A driver can be assigned at most once
//   - Lifecycle operations are authorized against the acting party
//
// Merchants act on behalf of their restaurant, so merchant authorization
// compares the actor's ID with the order's restaurant ID.
type Order struct {
	id          kernel.UUID
	number      string
	customerID  kernel.UUID
	restaurant  kernel.UUID
	driverID    *kernel.UUID
	voucherID   *kernel.UUID
	destination Destination
	items       []Item

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	pricing       Pricing
	status        Status

	estimatedDeliveryMinutes int
	cancellationReason       string

	placedAt    time.Time
	confirmedAt *time.Time
	readyAt     *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	tracking []TrackingEntry
	events   []Event

	guard guard.ConstructorGuard
}

// NewOrder creates an order at checkout. The order starts in Pending status
// with payment pending, and records the initial tracking entry and domain
// event.
//
// Items must be non-empty; each item and the destination must have been
// created through their constructors. The pricing breakdown is taken as
// computed by the pricing engine and is not revalidated here.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	destination Destination,
	items []Item,
	paymentMethod PaymentMethod,
	pricing Pricing,
	voucherID *kernel.UUID,
	estimatedDeliveryMinutes int,
	placedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:                   Pending,
		paymentStatus:            PaymentPending,
		pricing:                  pricing,
		estimatedDeliveryMinutes: estimatedDeliveryMinutes,
		placedAt:                 placedAt,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDestination(destination),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		order.setVoucherID(voucherID),
	); err != nil {
		return nil, err
	}

	order.track("Order placed, waiting for restaurant confirmation", placedAt)
	return order, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction. All fields are taken as stored; no lifecycle rules are
// re-applied.
type RestoreOrderParams struct {
	ID                       kernel.UUID
	Number                   string
	CustomerID               kernel.UUID
	RestaurantID             kernel.UUID
	DriverID                 *kernel.UUID
	VoucherID                *kernel.UUID
	Destination              Destination
	Items                    []Item
	PaymentMethod            PaymentMethod
	PaymentStatus            PaymentStatus
	Pricing                  Pricing
	Status                   Status
	EstimatedDeliveryMinutes int
	CancellationReason       string
	PlacedAt                 time.Time
	ConfirmedAt              *time.Time
	ReadyAt                  *time.Time
	PickedUpAt               *time.Time
	DeliveredAt              *time.Time
	CancelledAt              *time.Time
	Tracking                 []TrackingEntry
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and records no tracking entry or event.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		paymentStatus:            params.PaymentStatus,
		pricing:                  params.Pricing,
		estimatedDeliveryMinutes: params.EstimatedDeliveryMinutes,
		cancellationReason:       params.CancellationReason,
		placedAt:                 params.PlacedAt,
		confirmedAt:              params.ConfirmedAt,
		readyAt:                  params.ReadyAt,
		pickedUpAt:               params.PickedUpAt,
		deliveredAt:              params.DeliveredAt,
		cancelledAt:              params.CancelledAt,
		tracking:                 params.Tracking,
		guard:                    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setNumber(params.Number),
		order.setCustomerID(params.CustomerID),
		order.setRestaurantID(params.RestaurantID),
		order.setDestination(params.Destination),
		order.setItems(params.Items),
		order.setPaymentMethod(params.PaymentMethod),
		order.setVoucherID(params.VoucherID),
		order.setStatus(params.Status),
		params.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if params.DriverID != nil {
		if err := params.DriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *params.DriverID
		order.driverID = &driverID
	}

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "#2603151234".
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the ordering customer's ID.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurant
}

// DriverID returns the assigned driver's ID, or nil while unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// VoucherID returns the applied voucher's ID, or nil if none was used.
func (o *Order) VoucherID() *kernel.UUID {
	return o.voucherID
}

// Destination returns the delivery destination.
func (o *Order) Destination() Destination {
	return o.destination
}

// Items returns the order's line items. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current settlement state of the payment.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Pricing returns the money breakdown fixed at checkout.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedDeliveryMinutes returns the delivery estimate shown to the
// customer at checkout.
func (o *Order) EstimatedDeliveryMinutes() int {
	return o.estimatedDeliveryMinutes
}

// CancellationReason returns the reason given at cancellation, empty
// otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ConfirmedAt returns when the restaurant confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ReadyAt returns when the order became ready for pickup, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// PickedUpAt returns when the driver collected the order, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Tracking returns the append-only status history. The returned slice is a
// copy.
func (o *Order) Tracking() []TrackingEntry {
	tracking := make([]TrackingEntry, len(o.tracking))
	copy(tracking, o.tracking)
	return tracking
}

// Events returns the domain events recorded since construction or the last
// ClearEvents call.
func (o *Order) Events() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents discards recorded events, called after they are published.
func (o *Order) ClearEvents() {
	o.events = nil
}

// Confirm moves the order from Pending to Confirmed. Only the restaurant's
// merchant may confirm.
func (o *Order) Confirm(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeMerchant(actor); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.confirmedAt = &now
	o.track("Restaurant confirmed the order", now)
	return nil
}

// StartPreparing moves the order from Confirmed to Preparing. Only the
// restaurant's merchant may start preparation. After this the customer can no
// longer cancel.
func (o *Order) StartPreparing(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeMerchant(actor); err != nil {
		return err
	}

	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.track("Kitchen started preparing the order", now)
	return nil
}

// MarkReady moves the order to ReadyForPickup, making it visible as a job to
// nearby drivers. Only the restaurant's merchant may mark it ready.
func (o *Order) MarkReady(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeMerchant(actor); err != nil {
		return err
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.readyAt = &now
	o.track("Order is ready and waiting for a driver", now)
	return nil
}

// AssignDriver claims the order for the accepting driver and moves it from
// ReadyForPickup to PickedUp. Fails with ErrAlreadyAssigned when another
// driver got there first.
func (o *Order) AssignDriver(actor kernel.Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleDriver) {
		return errs.NewForbiddenError(actor.String(), "order "+o.number)
	}
	if o.driverID != nil {
		return ErrAlreadyAssigned
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	driverID := actor.ID()
	o.status = newStatus
	o.driverID = &driverID
	o.pickedUpAt = &now
	o.track("Driver picked up the order", now)
	return nil
}

// StartDelivering moves the order from PickedUp to Delivering. Only the
// assigned driver may start the delivery.
func (o *Order) StartDelivering(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeDriver(actor); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivering()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.track("Driver is on the way to you", now)
	return nil
}

// CompleteDelivery moves the order from Delivering to Delivered. Only the
// assigned driver may complete. Cash payments settle on delivery.
func (o *Order) CompleteDelivery(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeDriver(actor); err != nil {
		return err
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	if o.paymentMethod == PaymentMethodCash && o.paymentStatus == PaymentPending {
		o.paymentStatus = PaymentPaid
	}
	o.track("Order delivered. Enjoy your meal!", now)
	return nil
}

// Cancel cancels the order with a reason. The owning customer may cancel only
// while preparation has not started; admins may cancel under the same window.
// A settled payment is marked refunded.
func (o *Order) Cancel(actor kernel.Actor, reason string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	isOwner := actor.HasRole(kernel.RoleCustomer) && actor.ID().IsEqual(o.customerID)
	if !isOwner && !actor.HasRole(kernel.RoleAdmin) {
		return errs.NewForbiddenError(actor.String(), "order "+o.number)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	o.cancelledAt = &now
	if o.paymentStatus == PaymentPaid {
		o.paymentStatus = PaymentRefunded
	}
	o.track("Order cancelled: "+reason, now)
	return nil
}

// MarkPaid records that the payment settled, as reported by the payment
// collaborator.
func (o *Order) MarkPaid() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.paymentStatus != PaymentPending {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			errors.New("payment is not pending"))
	}
	o.paymentStatus = PaymentPaid
	return nil
}

func (o *Order) authorizeMerchant(actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleMerchant) || !actor.ID().IsEqual(o.restaurant) {
		return errs.NewForbiddenError(actor.String(), "order "+o.number)
	}
	return nil
}

func (o *Order) authorizeDriver(actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.HasRole(kernel.RoleDriver) || o.driverID == nil || !actor.ID().IsEqual(*o.driverID) {
		return errs.NewForbiddenError(actor.String(), "order "+o.number)
	}
	return nil
}

// track appends a history entry and records the matching domain event.
func (o *Order) track(description string, now time.Time) {
	o.tracking = append(o.tracking, NewTrackingEntry(o.status, description, now))
	o.events = append(o.events, Event{
		OrderID:     o.id,
		OrderNumber: o.number,
		Status:      o.status,
		Description: description,
		OccurredAt:  now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := ValidateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurant = id
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setVoucherID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	voucherID := *id
	o.voucherID = &voucherID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
