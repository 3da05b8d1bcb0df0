package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for assignment
// records. The log is append-only: records are added, never updated or
// deleted.
type AssignmentRepository interface {
	// Add appends an assignment record to the log.
	// The record must be valid.
	Add(ctx context.Context, record *assignment.Assignment) error

	// GetAll retrieves all assignment records ordered by creation time,
	// newest first.
	GetAll(ctx context.Context) ([]*assignment.Assignment, error)
}
