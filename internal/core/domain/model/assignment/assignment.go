package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for assignment records.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via its constructors")
	// ErrReasonIsRequired is returned when a failed record is created without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrPartnerIsRequired is returned when a success record is created without a partner.
	ErrPartnerIsRequired = errs.NewValueIsRequiredError("partnerID")
)

// Assignment is an immutable record of one attempt to match an order with a
// partner. One record is appended per attempt; records are never updated.
//
// Invariants:
//   - orderID is always set
//   - partnerID is set on every success and on failures where a partner had
//     been selected (capacity or area rejections of a chosen partner)
//   - reason is present if and only if the attempt failed
type Assignment struct {
	// id uniquely identifies the record
	id kernel.UUID
	// orderID references the attempted order
	orderID kernel.UUID
	// partnerID references the selected partner, when one was chosen
	partnerID *kernel.UUID
	// status is the outcome of the attempt
	status Status
	// reason is the human-readable failure cause (empty on success)
	reason string
	// createdAt is the time the attempt was recorded
	createdAt time.Time
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewSuccessAssignment records a successful match of an order with a partner.
func NewSuccessAssignment(orderID, partnerID kernel.UUID) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := partnerID.Validate(); err != nil {
		return nil, ErrPartnerIsRequired
	}

	return &Assignment{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		partnerID: &partnerID,
		status:    Success,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewFailedAssignment records a failed attempt with a human-readable reason.
// partnerID may be nil when no partner had been selected (e.g. no candidate
// in the order's area).
func NewFailedAssignment(orderID kernel.UUID, partnerID *kernel.UUID, reason string) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReasonIsRequired
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	record := &Assignment{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		status:    Failed,
		reason:    reason,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if partnerID != nil {
		id := *partnerID
		record.partnerID = &id
	}

	return record, nil
}

// RestoreAssignment reconstructs an Assignment record from persistent storage.
func RestoreAssignment(
	id, orderID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	reason string,
	createdAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == Failed && reason == "" {
		return nil, ErrReasonIsRequired
	}
	if status == Success && partnerID == nil {
		return nil, ErrPartnerIsRequired
	}

	record := &Assignment{
		id:        id,
		orderID:   orderID,
		status:    status,
		reason:    reason,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		pid := *partnerID
		record.partnerID = &pid
	}

	return record, nil
}

// Validate checks if the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the record's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the attempted order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// PartnerID returns the selected partner's identifier, or nil when no
// partner was chosen for this attempt.
func (a *Assignment) PartnerID() *kernel.UUID {
	return a.partnerID
}

// Status returns the outcome of the attempt.
func (a *Assignment) Status() Status {
	return a.status
}

// IsSuccess reports whether the attempt produced an assignment.
func (a *Assignment) IsSuccess() bool {
	return a.status == Success
}

// Reason returns the failure cause. Empty on success.
func (a *Assignment) Reason() string {
	return a.reason
}

// CreatedAt returns the time the attempt was recorded.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}
