package order

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"fooddelivery/internal/pkg/errs"
)

var orderNumberPattern = regexp.MustCompile(`^#\d{10}$`)

// ErrOrderNumberTaken is returned by the persistence layer when a generated
// order number collides with an existing order. Callers retry checkout
// persistence with a freshly generated number.
var ErrOrderNumberTaken = errors.New("order number is already taken")

// GenerateNumber produces a human-readable order number of the form
// "#yymmdd" followed by four random digits, e.g. "#2603151234".
//
// The random suffix gives 10 000 combinations per day, so collisions are
// possible under load. Uniqueness is enforced by the database; callers retry
// with a fresh number on a unique-constraint violation.
func GenerateNumber(now time.Time) string {
	//nolint:gosec // order numbers are display identifiers, not secrets
	return fmt.Sprintf("#%s%04d", now.Format("060102"), rand.Intn(10000))
}

// ValidateNumber checks an order number against the canonical format.
func ValidateNumber(number string) error {
	if !orderNumberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match #yymmddNNNN", number))
	}
	return nil
}
