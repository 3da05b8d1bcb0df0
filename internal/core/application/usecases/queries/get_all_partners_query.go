// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllPartnersQueryIsNotConstructed = errors.New(
	"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
)

// GetAllPartnersQuery retrieves information about all delivery partners.
// Returns partner identities, availability, and load for monitoring and
// dispatching decisions.
//
// Example:
//
//	query := NewGetAllPartnersQuery()
//	handler := NewGetAllPartnersQueryHandler(db)
//
//	partners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve partners: %w", err)
//	}
//
//	for _, p := range partners {
//	    fmt.Printf("%s (%s): %d orders\n", p.Name, p.Status, p.CurrentLoad)
//	}
type GetAllPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPartnersQuery creates a query to retrieve all partners.
// This is a parameterless query that fetches the complete partner list.
func NewGetAllPartnersQuery() GetAllPartnersQuery {
	return GetAllPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPartnersQueryIsNotConstructed if validation fails.
func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

// GetAllPartnersQueryResponse represents partner information in the read model.
type GetAllPartnersQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Phone       string
	Status      string
	CurrentLoad int
	Areas       []string
	ShiftStart  string
	ShiftEnd    string
}
