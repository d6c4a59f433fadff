package commands

import (
	"errors"
	"time"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a sweep of abandoned orders: unpaid
// orders still in the initial status placed before the cutoff are cancelled.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to sweep stale orders.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	sweepCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return CancelStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	sweepCommand.cutoff = cutoff.UTC()

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the placement time before which unpaid pending orders are
// considered abandoned.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
