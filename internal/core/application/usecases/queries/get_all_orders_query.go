package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves information about all orders in the system.
// Returns order details, lifecycle status, and current assignee.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents order information in the read model.
// AssignedTo is nil while the order is pending.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	TotalAmount     float64
	ScheduledFor    string
	Status          string
	AssignedTo      *kernel.UUID
}
