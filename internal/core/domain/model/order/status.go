package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine in which every non-terminal status may move
// to any other valid status, and the terminal statuses accept no transition:
//
//	Pending ──┬──> InProgress ──┬──> Completed
//	          │        │        │
//	          └────────┴────────┴──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// InProgress indicates the kitchen has picked the order up.
	InProgress

	// Completed indicates the order has been served in full.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned or revoked.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status
// (for example "IN_PROGRESS"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "PENDING".
// Returns "UNKNOWN" for invalid status values.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
// Completed and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ChangeTo validates the transition from the current status to next
// and returns next on success.
//
// Any valid transition out of a non-terminal status is allowed, including
// straight from Pending to Completed. Transitions out of a terminal status
// are rejected with an InvalidStateError; transitions to an invalid value
// are rejected with a ValueIsInvalidError.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order status",
			s.String(),
			fmt.Errorf("no transition allowed out of a terminal status"),
		)
	}
	return next, nil
}
