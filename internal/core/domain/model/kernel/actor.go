package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Role identifies the kind of party performing an operation. Authentication
// happens outside the core; every operation receives the resolved identity
// and role explicitly instead of reading an ambient "current user".
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders, mutates carts, and cancels within the window.
	RoleCustomer

	// RoleMerchant confirms, prepares, and readies orders for its restaurant.
	RoleMerchant

	// RoleDriver accepts jobs, progresses deliveries, and manages its wallet.
	RoleDriver

	// RoleAdmin is reserved for administrative collaborators.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleMerchant: "Merchant",
		RoleDriver:   "Driver",
		RoleAdmin:    "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleMerchant: "Merchant",
		RoleDriver:   "Driver",
		RoleAdmin:    "Admin",
	}
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer; safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// ErrActorIsNotConstructed is returned when validating an Actor that was not
// created via the NewActor constructor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the authenticated identity invoking a core operation, paired with
// its role. Handlers use the actor to decide whether the party is authorized
// for the requested transition; a mismatch surfaces as a Forbidden error.
//
// Example:
//
//	actor, err := kernel.NewActor(customerID, kernel.RoleCustomer)
//	if err != nil {
//	    // Handle validation error
//	}
//	cmd, _ := commands.NewCancelOrderCommand(actor, orderID, "changed my mind")
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.setID(id); err != nil {
		return Actor{}, err
	}
	if err := actor.setRole(role); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate checks if the Actor was properly constructed.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity. For customers this is the customer id,
// for merchants the merchant id, for drivers the driver id.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// HasRole reports whether the actor holds the given role.
func (a Actor) HasRole(role Role) bool {
	return a.role == role
}

// String returns a diagnostic representation like "Customer(550e8400-...)".
// Implements fmt.Stringer.
func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.role, a.id)
}

func (a *Actor) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
