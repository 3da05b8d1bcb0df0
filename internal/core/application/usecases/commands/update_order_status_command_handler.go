package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed is returned when the requested status cannot
// be reached through this command. Assignment goes through the assignment
// commands, and an order cannot return to pending.
var ErrStatusTransitionNotAllowed = errs.NewInvalidStateError(
	"status can only be updated to picked or delivered",
)

// UpdateOrderStatusCommandHandler moves orders along the delivery lifecycle.
// The delivered transition also releases the assigned partner's load slot:
// the decrement is conditional on the stored load, so a concurrent change
// surfaces as errs.ErrConcurrentModification instead of losing an update.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// Requires a UoWFactory because the delivered transition touches both the
// order and its assigned partner.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Applies the transition through the order's state machine, so invalid moves
// surface as errs.ErrInvalidState. On the delivered transition the assigned
// partner's load is decremented in the same transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Status() {
	case order.Picked:
		if err = aggregate.MarkPicked(); err != nil {
			return err
		}
	case order.Delivered:
		if err = aggregate.MarkDelivered(); err != nil {
			return err
		}
	default:
		return ErrStatusTransitionNotAllowed
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered {
		if err = h.releasePartnerLoad(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releasePartnerLoad frees the load slot held by the delivered order.
func (h *UpdateOrderStatusCommandHandler) releasePartnerLoad(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) error {
	partnerID := aggregate.AssignedTo()
	if partnerID == nil {
		return nil
	}

	partnerRepo := uow.PartnerRepository()
	assignee, err := partnerRepo.Get(ctx, *partnerID)
	if err != nil {
		return err
	}

	expectedLoad := assignee.CurrentLoad()
	if err = assignee.DecrementLoad(); err != nil {
		return err
	}

	return partnerRepo.UpdateLoad(ctx, assignee, expectedLoad)
}
