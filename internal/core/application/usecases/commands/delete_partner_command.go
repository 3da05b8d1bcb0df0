package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand represents a request to remove a delivery partner.
type DeletePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePartnerCommand creates a command to remove a delivery partner.
// Validates that the partner ID is valid.
func NewDeletePartnerCommand(partnerID kernel.UUID) (DeletePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return DeletePartnerCommand{}, err
	}

	return DeletePartnerCommand{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeletePartnerCommandIsNotConstructed if validation fails.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to remove.
func (c DeletePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}
