package queries

import (
	"context"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPartnersQueryHandler retrieves all partner information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPartnersQueryHandler creates a handler for partner retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all partners.
// Returns a slice of partner read models sorted by name.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]GetAllPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAllPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_load,
			areas,
			shift_start,
			shift_end
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var partner GetAllPartnersQueryResponse
		var id uuid.UUID
		var areas string

		err = rows.Scan(
			&id,
			&partner.Name,
			&partner.Email,
			&partner.Phone,
			&partner.Status,
			&partner.CurrentLoad,
			&areas,
			&partner.ShiftStart,
			&partner.ShiftEnd,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		partner.ID = partnerID

		if areas != "" {
			partner.Areas = strings.Split(areas, ",")
		}

		partners = append(partners, partner)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
