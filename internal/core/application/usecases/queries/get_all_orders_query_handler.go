package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all order information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Returns a slice of order read models in creation order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_phone,
			customer_address,
			area,
			total_amount,
			scheduled_for,
			status,
			assigned_to
		FROM orders
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetAllOrdersQueryResponse
		var id uuid.UUID
		var assignedTo uuid.NullUUID

		err = rows.Scan(
			&id,
			&order.OrderNumber,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.CustomerAddress,
			&order.Area,
			&order.TotalAmount,
			&order.ScheduledFor,
			&order.Status,
			&assignedTo,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ID = orderID

		if assignedTo.Valid {
			partnerID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			order.AssignedTo = &partnerID
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
