package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler computes assignment statistics in the
// database. Counting happens in SQL; the rate is derived in Go so an empty
// log yields zero instead of a division error.
type GetAssignmentMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentMetricsQueryHandler creates a handler for metrics queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{db: db}
}

// Handle executes the metrics query over the whole assignment log.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (GetAssignmentMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	response := GetAssignmentMetricsQueryResponse{
		FailureReasons: make(map[string]int),
	}

	var total, successes int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'success')
		FROM assignments
	`).Row()
	if err := row.Scan(&total, &successes); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	response.TotalAssigned = total
	if total > 0 {
		response.SuccessRate = float64(successes) / float64(total) * 100
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(NULLIF(reason, ''), 'Unknown'),
			COUNT(*)
		FROM assignments
		WHERE status = 'failed'
		GROUP BY 1
	`).Rows()
	if err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var reason string
		var count int

		if err = rows.Scan(&reason, &count); err != nil {
			return GetAssignmentMetricsQueryResponse{}, err
		}

		response.FailureReasons[reason] = count
	}

	if err = rows.Err(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	return response, nil
}
