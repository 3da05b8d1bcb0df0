package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//
// Only the Pending -> Assigned transition is driven by the assignment engine;
// the later transitions are reported by the delivery partner. Delivered is a
// final state with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a partner.
	Pending

	// Assigned indicates the order has been matched with a delivery partner.
	Assigned

	// Picked indicates the partner has picked the order up.
	Picked

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Assigned, Picked, and Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-level status name into a Status value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// ValidateAssign checks if the status allows assignment without performing
// the transition. Only Pending orders are eligible: a previously assigned
// order is never re-attempted by the engine.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewInvalidStateErrorWithCause(
			"order is not pending",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveAssignee validates the consistency between order status and
// partner assignment.
//
// Business rules:
//   - Pending orders must not have a partner assigned
//   - Assigned, Picked, and Delivered orders must have a partner assigned
func (s Status) ValidateCanHaveAssignee(assignee bool) error {
	if assignee && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned partner", s.String()),
		)
	}

	if !assignee && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned partner", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
// Valid only from Pending; returns an InvalidState error otherwise.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Pick transitions the status to Picked.
// Valid only from Assigned; returns an InvalidState error otherwise.
func (s Status) Pick() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order is not assigned",
			fmt.Errorf("%s is not a valid status to pick", s.String()),
		)
	}

	return Picked, nil
}

// Deliver transitions the status to Delivered.
// Valid only from Picked; returns an InvalidState error otherwise.
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Picked {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order is not picked",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
