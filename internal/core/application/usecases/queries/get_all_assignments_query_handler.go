package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAssignmentsQueryHandler retrieves the assignment log from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAssignmentsQueryHandler creates a handler for assignment log queries.
// Requires a GORM database connection for query execution.
func NewGetAllAssignmentsQueryHandler(db *gorm.DB) GetAllAssignmentsQueryHandler {
	return GetAllAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the assignment log, newest first.
func (h GetAllAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAssignmentsQuery,
) ([]GetAllAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetAllAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			reason,
			created_at
		FROM assignments
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetAllAssignmentsQueryResponse
		var id, orderID uuid.UUID
		var partnerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&orderID,
			&partnerID,
			&record.Status,
			&record.Reason,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID

		recordOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		record.OrderID = recordOrderID

		if partnerID.Valid {
			recordPartnerID, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			record.PartnerID = &recordPartnerID
		}

		assignments = append(assignments, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
