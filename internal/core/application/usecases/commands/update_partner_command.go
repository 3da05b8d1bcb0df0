package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to change a partner's operational
// profile: status, coverage areas, and working shift. Identity and contact
// details are immutable after registration.
//
// Example:
//
//	cmd, err := NewUpdatePartnerCommand(partnerID, partner.Inactive,
//	    []string{"Downtown"}, "09:00", "17:00")
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID  kernel.UUID
	status     partner.Status
	areas      []string
	shiftStart string
	shiftEnd   string

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner's status,
// coverage areas, and shift. Validates the partner ID, the status value, and
// that at least one coverage area is provided.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	status partner.Status,
	areas []string,
	shiftStart, shiftEnd string,
) (UpdatePartnerCommand, error) {
	partnerCommand := UpdatePartnerCommand{
		shiftStart: shiftStart,
		shiftEnd:   shiftEnd,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setStatus(status),
		partnerCommand.setAreas(areas),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Status returns the requested partner status.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}

// Areas returns the requested coverage areas.
func (c UpdatePartnerCommand) Areas() []string {
	return c.areas
}

// Shift returns the requested working shift boundaries.
func (c UpdatePartnerCommand) Shift() (start, end string) {
	return c.shiftStart, c.shiftEnd
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return ErrAreasAreRequired
	}

	c.areas = areas
	return nil
}
