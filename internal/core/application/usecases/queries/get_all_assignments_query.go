package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllAssignmentsQueryIsNotConstructed = errors.New(
	"GetAllAssignmentsQuery must be created via NewGetAllAssignmentsQuery constructor",
)

// GetAllAssignmentsQuery retrieves the full assignment log, newest first.
// Every attempt to match an order with a partner is on the log, failed ones
// included, so this is the audit trail of the assignment engine.
type GetAllAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAssignmentsQuery creates a query to retrieve the assignment log.
func NewGetAllAssignmentsQuery() GetAllAssignmentsQuery {
	return GetAllAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAssignmentsQueryIsNotConstructed if validation fails.
func (q GetAllAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAssignmentsQueryIsNotConstructed)
}

// GetAllAssignmentsQueryResponse represents one assignment attempt in the
// read model. PartnerID is nil when no partner had been chosen for the
// attempt; Reason is empty on success.
type GetAllAssignmentsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	Status    string
	Reason    string
	CreatedAt time.Time
}
