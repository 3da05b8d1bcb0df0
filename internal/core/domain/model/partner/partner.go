package partner

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MaxLoad is the maximum number of concurrently assigned, undelivered orders
// a partner may carry.
const MaxLoad = 3

// Domain errors for partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a partner without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPhoneIsRequired is returned when attempting to create a partner without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAreasAreRequired is returned when attempting to create a partner without serviced areas.
	ErrAreasAreRequired = errs.NewValueIsRequiredError("areas")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrLoadIsAtMaximum is returned when incrementing the load of a partner already at MaxLoad.
	ErrLoadIsAtMaximum = errs.NewInvalidStateError("partner is at maximum capacity")
	// ErrLoadIsAtMinimum is returned when decrementing the load of a partner with no assigned orders.
	ErrLoadIsAtMinimum = errs.NewInvalidStateError("partner has no assigned orders")
)

// Partner represents a delivery partner in the dispatch system.
// It is an aggregate root that manages partner identity, availability, and
// capacity bookkeeping.
//
// Key responsibilities:
//   - Managing partner identity (ID, name, contact details)
//   - Declaring the delivery areas the partner services
//   - Tracking current load within the [0, MaxLoad] invariant
//   - Answering availability questions for the assignment engine
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name, email, and phone
//   - Partner must declare at least one serviced area
//   - currentLoad can never leave the [0, MaxLoad] range
//   - Only active partners below MaxLoad are available for assignment
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the human-readable name of the partner
	name string
	// email is the partner's unique contact email
	email string
	// phone is the partner's contact phone number
	phone string
	// status is the partner's lifecycle state
	status Status
	// currentLoad counts assigned, undelivered orders
	currentLoad int
	// areas are the delivery areas the partner services
	areas []string
	// shiftStart/shiftEnd bound the partner's working hours (HH:mm, optional)
	shiftStart string
	shiftEnd   string
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a new active Partner with zero current load.
// This is the only way to create a fresh Partner instance; all parameters are
// validated and errors are aggregated.
func NewPartner(id kernel.UUID, name, email, phone string, areas []string) (*Partner, error) {
	partner := &Partner{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setAreas(areas),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage.
// Unlike NewPartner, which creates fresh partners, this constructor restores
// a partner to its previously persisted state, including status and load.
//
// Business rules applied:
//   - all NewPartner validations
//   - status must be a valid lifecycle state
//   - currentLoad must lie within [0, MaxLoad]
func RestorePartner(
	id kernel.UUID,
	name, email, phone string,
	status Status,
	currentLoad int,
	areas []string,
	shiftStart, shiftEnd string,
) (*Partner, error) {
	partner := &Partner{
		shiftStart: shiftStart,
		shiftEnd:   shiftEnd,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setStatus(status),
		partner.setCurrentLoad(currentLoad),
		partner.setAreas(areas),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Partner was properly constructed via NewPartner or
// RestorePartner. The zero value of Partner is invalid.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the unique identifier of the partner.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable name of the partner.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact email.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone number.
func (p *Partner) Phone() string {
	return p.phone
}

// Status returns the partner's lifecycle state.
func (p *Partner) Status() Status {
	return p.status
}

// CurrentLoad returns the number of assigned, undelivered orders the partner
// is carrying. Guaranteed to be within [0, MaxLoad] for valid partners.
func (p *Partner) CurrentLoad() int {
	return p.currentLoad
}

// Areas returns the delivery areas the partner services.
// The returned slice is a copy to prevent external modification.
func (p *Partner) Areas() []string {
	out := make([]string, len(p.areas))
	copy(out, p.areas)
	return out
}

// Shift returns the partner's working-hour bounds (HH:mm). Both values are
// empty when no shift is configured.
func (p *Partner) Shift() (start, end string) {
	return p.shiftStart, p.shiftEnd
}

// SetShift updates the partner's working-hour bounds.
func (p *Partner) SetShift(start, end string) {
	p.shiftStart = start
	p.shiftEnd = end
}

// SetAreas replaces the partner's serviced areas.
// At least one area is required.
func (p *Partner) SetAreas(areas []string) error {
	return p.setAreas(areas)
}

// Activate moves the partner into the Active state, making it eligible for
// assignment again.
func (p *Partner) Activate() {
	p.status = Active
}

// Deactivate moves the partner into the Inactive state. The partner keeps its
// current load but receives no new assignments.
func (p *Partner) Deactivate() {
	p.status = Inactive
}

// CoversArea reports whether the partner services the given delivery area.
func (p *Partner) CoversArea(area string) bool {
	for _, a := range p.areas {
		if a == area {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the partner may receive a new assignment:
// active and below maximum capacity.
func (p *Partner) IsAvailable() bool {
	return p.status == Active && p.currentLoad < MaxLoad
}

// IncrementLoad records one newly assigned order.
// Returns ErrLoadIsAtMaximum when the partner is already at MaxLoad; the load
// can never exceed the capacity invariant.
func (p *Partner) IncrementLoad() error {
	if p.currentLoad >= MaxLoad {
		return ErrLoadIsAtMaximum
	}

	p.currentLoad++
	return nil
}

// DecrementLoad records one delivered order releasing capacity.
// Returns ErrLoadIsAtMinimum when the load is already zero; the load can
// never go negative.
func (p *Partner) DecrementLoad() error {
	if p.currentLoad <= 0 {
		return ErrLoadIsAtMinimum
	}

	p.currentLoad--
	return nil
}

// setID sets the partner's unique identifier with validation.
func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setName sets the partner's name with validation.
func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setEmail sets the partner's email with validation.
func (p *Partner) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	p.email = email
	return nil
}

// setPhone sets the partner's phone with validation.
func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	p.phone = phone
	return nil
}

// setStatus sets the partner's lifecycle state with validation.
func (p *Partner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

// setCurrentLoad sets the partner's load, enforcing the [0, MaxLoad] range.
// Used during restoration from persistent state.
func (p *Partner) setCurrentLoad(load int) error {
	if load < 0 || load > MaxLoad {
		return errs.NewValueIsOutOfRangeError("currentLoad", load, 0, MaxLoad)
	}

	p.currentLoad = load
	return nil
}

// setAreas sets the partner's serviced areas with validation.
func (p *Partner) setAreas(areas []string) error {
	if len(areas) == 0 {
		return ErrAreasAreRequired
	}

	for _, area := range areas {
		if area == "" {
			return errs.NewValueIsRequiredError("area name")
		}
	}

	p.areas = make([]string, len(areas))
	copy(p.areas, areas)
	return nil
}
