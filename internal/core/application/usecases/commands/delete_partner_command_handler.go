package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// ErrPartnerHasActiveOrders is returned when deleting a partner that still
// carries assigned orders.
var ErrPartnerHasActiveOrders = errs.NewInvalidStateError("Partner has active orders")

// DeletePartnerCommandHandler handles partner removal.
// A partner with a non-zero current load cannot be removed: their in-flight
// orders would lose their assignee.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal operations.
// Requires a PartnerUoWFactory for transactional persistence.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner removal command.
// Returns errs.ErrObjectNotFound when the partner does not exist and
// ErrPartnerHasActiveOrders when the partner still carries assigned orders.
func (h *DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
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

	if aggregate.CurrentLoad() > 0 {
		return ErrPartnerHasActiveOrders
	}

	if err = partnerRepo.Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
