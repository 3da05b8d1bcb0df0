package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrEmailIsRequired = errors.New("email is required")
	ErrPhoneIsRequired = errors.New("phone is required")
	ErrAreasAreRequired = errors.New(
		"at least one coverage area is required",
	)
)

// CreatePartnerCommand represents a request to register a new delivery partner.
// The partner starts in active status with zero current load.
//
// Example:
//
//	partnerID := kernel.NewUUID()
//	cmd, err := NewCreatePartnerCommand(partnerID, "Alex Smith", "alex@example.com",
//	    "+15550001", []string{"Downtown", "Midtown"})
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//
//	handler := NewCreatePartnerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create partner: %w", err)
//	}
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	areas     []string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a new delivery partner.
// Validates that the partner ID is valid, contact fields are not empty, and at
// least one coverage area is provided. Returns an error if any validation fails.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name, email, phone string,
	areas []string,
) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setEmail(email),
		partnerCommand.setPhone(phone),
		partnerCommand.setAreas(areas),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's contact email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's contact phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the delivery areas the partner covers.
func (c CreatePartnerCommand) Areas() []string {
	return c.areas
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return ErrAreasAreRequired
	}

	c.areas = areas
	return nil
}
