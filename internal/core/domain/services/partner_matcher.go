package services

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrNoPartnerAvailable is returned when no suitable partner exists for an
// order. This occurs when no candidate is active, below maximum load, and
// covering the order's delivery area.
var ErrNoPartnerAvailable = errors.New("no partner available in the area")

// PartnerMatcher is a domain service responsible for matching a pending
// order with the most suitable delivery partner.
//
// Matching rules:
//   - only active partners below MaxLoad are candidates
//   - the partner must cover the order's delivery area
//   - among eligible candidates, the numerically lowest current load wins
//   - ties on load are broken by candidate order: the scan uses a strict
//     comparison, so the first candidate encountered wins; given the same
//     candidate slice the selection is fully deterministic
//
// Example usage:
//
//	matcher := NewPartnerMatcher()
//	selected, err := matcher.Match(pendingOrder, candidates)
//	if errors.Is(err, ErrNoPartnerAvailable) {
//	    // no partner services this order's area right now
//	    return
//	}
//	// pendingOrder is now assigned and selected carries one more order
type PartnerMatcher struct{}

// NewPartnerMatcher creates a new PartnerMatcher instance.
func NewPartnerMatcher() PartnerMatcher {
	return PartnerMatcher{}
}

// Match finds the most suitable partner for the order and executes the
// assignment workflow: the order moves to Assigned status referencing the
// partner, and the partner's load is incremented.
//
// Returns ErrNoPartnerAvailable when no candidate qualifies; in that case
// neither the order nor any partner is mutated. The order must be valid and
// in Pending status.
func (m PartnerMatcher) Match(o *order.Order, candidates []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := m.findLeastLoaded(o.Area(), candidates)
	if err != nil {
		return nil, err
	}

	if err = best.IncrementLoad(); err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findLeastLoaded scans the candidates for the eligible partner with the
// lowest current load. The scan is stable: on equal load the earlier
// candidate is kept, which makes the bulk run deterministic for a given
// snapshot of partners.
func (m PartnerMatcher) findLeastLoaded(area string, candidates []*partner.Partner) (*partner.Partner, error) {
	var best *partner.Partner

	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() || !p.CoversArea(area) {
			continue
		}

		if best == nil || p.CurrentLoad() < best.CurrentLoad() {
			best = p
		}
	}

	if best == nil {
		return nil, ErrNoPartnerAvailable
	}

	return best, nil
}
