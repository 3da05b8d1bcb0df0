// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Provides methods for storing, retrieving, and querying delivery partners
// with their status, load, and coverage areas.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// UpdateLoad persists the partner's current load conditionally: the write
	// only applies when the stored load still equals expectedLoad. Returns
	// errs.ErrConcurrentModification when another writer changed the load in
	// the meantime.
	//
	// Example:
	//   expected := p.CurrentLoad()
	//   if err := p.IncrementLoad(); err != nil {
	//       return err
	//   }
	//   if err := repo.UpdateLoad(ctx, p, expected); err != nil {
	//       if errors.Is(err, errs.ErrConcurrentModification) {
	//           // someone else took the slot, retry with fresh state
	//       }
	//       return err
	//   }
	UpdateLoad(ctx context.Context, aggregate *partner.Partner, expectedLoad int) error

	// Delete removes a partner aggregate from storage.
	// Returns errs.ErrObjectNotFound when no partner has the given identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a partner aggregate by its unique identifier.
	// Returns the complete partner with status, load, and coverage areas.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAllActive retrieves all partners in Active status, ordered by
	// creation time. Candidates above maximum load are included; the matching
	// rules filter them out.
	GetAllActive(ctx context.Context) ([]*partner.Partner, error)
}
