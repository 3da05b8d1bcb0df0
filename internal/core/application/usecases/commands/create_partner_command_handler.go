package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler handles the business logic for partner registration.
// Creates new partners in active status with zero load, ready for assignment.
//
// Example:
//
//	handler := NewCreatePartnerCommandHandler(uowFactory)
//	partnerID := kernel.NewUUID()
//	cmd, _ := NewCreatePartnerCommand(partnerID, "Alex Smith", "alex@example.com",
//	    "+15550001", []string{"Downtown"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("partner registration failed: %w", err)
//	}
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration operations.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
// Creates the partner in active status and persists it within a transaction.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	aggregate, err := partner.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Areas())
	if err != nil {
		return err
	}

	if err = partnerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
