package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// UnknownFailureReason is the bucket for failed attempts whose reason is
// missing or empty in storage.
const UnknownFailureReason = "Unknown"

// GetAssignmentMetricsQuery computes aggregate statistics over the whole
// assignment log: attempt count, success rate, and failure reason breakdown.
//
// Example:
//
//	query := NewGetAssignmentMetricsQuery()
//	handler := NewGetAssignmentMetricsQueryHandler(db)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute metrics: %w", err)
//	}
//	fmt.Printf("%d attempts, %.1f%% assigned\n", metrics.TotalAssigned, metrics.SuccessRate)
type GetAssignmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignmentMetricsQuery creates a query to compute assignment metrics.
func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentMetricsQueryIsNotConstructed if validation fails.
func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}

// GetAssignmentMetricsQueryResponse aggregates the assignment log.
// SuccessRate is a percentage in [0, 100], exactly 0 for an empty log.
// FailureReasons counts failed attempts per reason; reasons missing in
// storage are counted under UnknownFailureReason.
type GetAssignmentMetricsQueryResponse struct {
	TotalAssigned  int
	SuccessRate    float64
	FailureReasons map[string]int
}
