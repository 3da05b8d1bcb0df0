package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler handles partner profile updates.
// Loads the partner, applies the requested status, areas, and shift through
// the aggregate's operations, and persists the result transactionally.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner update operations.
// Requires a PartnerUoWFactory for transactional persistence.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
// Returns errs.ErrObjectNotFound when the partner does not exist.
func (h *UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
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
	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.Status() == partner.Active {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = aggregate.SetAreas(cmd.Areas()); err != nil {
		return err
	}

	aggregate.SetShift(cmd.Shift())

	if err = partnerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
