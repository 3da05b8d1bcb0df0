package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

// Failure reasons recorded on the assignment log. These are user-facing
// strings and part of the metrics vocabulary, so they stay stable.
const (
	ReasonNoPartnersAvailable    = "No partners available in the area"
	ReasonOrderNotFound          = "Order not found"
	ReasonPartnerNotFound        = "Partner not found"
	ReasonPartnerNotActive       = "Partner is not active"
	ReasonPartnerAtCapacity      = "Partner is at maximum capacity"
	ReasonPartnerOutsideArea     = "Partner does not cover this area"
	ReasonOrderNotPending        = "Order is not pending"
	ReasonConcurrentModification = "Concurrent modification detected"
)

// AssignOrderCommandHandler assigns one order to an explicitly chosen partner.
// Capacity, coverage, and order state checks run in a fixed sequence, and
// every attempt lands on the assignment log whether it succeeds or not: a
// failed attempt is recorded in its own transaction so the record survives
// the rollback of the main one.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(orderID, partnerID)
//	record, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or partner does not exist; record carries the reason
//	case errors.Is(err, errs.ErrInvalidState):
//	    // capacity, coverage, or order state rejected the assignment
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // another writer won the race
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    // record is the success entry
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for targeted assignment
// operations. Requires a UoWFactory for coordinating order, partner, and
// assignment log updates.
func NewAssignOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign_order"),
	}
}

// Handle processes the targeted assignment command.
// Returns the assignment record produced by the attempt. On failure the
// returned record is the failed log entry (nil when even that could not be
// built) alongside the error describing the rejection.
func (h AssignOrderCommandHandler) Handle(
	ctx context.Context,
	command AssignOrderCommand,
) (*assignment.Assignment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	record, err := h.assign(ctx, command)
	if err == nil {
		return record, nil
	}

	reason, partnerID := failureDetails(err, command.PartnerID())
	failed := h.appendFailure(ctx, command.OrderID(), partnerID, reason)

	return failed, err
}

// assign runs the checked assignment inside one transaction.
func (h AssignOrderCommandHandler) assign(
	ctx context.Context,
	command AssignOrderCommand,
) (*assignment.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	assignee, err := partnerRepo.Get(ctx, command.PartnerID())
	if err != nil {
		return nil, err
	}

	if assignee.Status() != partner.Active {
		return nil, errs.NewInvalidStateError(ReasonPartnerNotActive)
	}

	if assignee.CurrentLoad() >= partner.MaxLoad {
		return nil, errs.NewInvalidStateError(ReasonPartnerAtCapacity)
	}

	if !assignee.CoversArea(aggregate.Area()) {
		return nil, errs.NewInvalidStateError(ReasonPartnerOutsideArea)
	}

	if err = aggregate.Status().ValidateAssign(); err != nil {
		return nil, errs.NewInvalidStateErrorWithCause(ReasonOrderNotPending, err)
	}

	expectedLoad := assignee.CurrentLoad()
	if err = assignee.IncrementLoad(); err != nil {
		return nil, err
	}

	if err = aggregate.Assign(assignee.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateIfPending(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = partnerRepo.UpdateLoad(ctx, assignee, expectedLoad); err != nil {
		return nil, err
	}

	record, err := assignment.NewSuccessAssignment(aggregate.ID(), assignee.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

// appendFailure writes a failed attempt to the assignment log in its own
// transaction. A write error here must not mask the original rejection, so
// it is logged and swallowed.
func (h AssignOrderCommandHandler) appendFailure(
	ctx context.Context,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	reason string,
) *assignment.Assignment {
	record, err := assignment.NewFailedAssignment(orderID, partnerID, reason)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build failure record",
			"order_id", orderID.String(), "error", err)
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to record failed attempt",
			"order_id", orderID.String(), "error", err)
		return record
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		h.logger.WarnContext(ctx, "failed to record failed attempt",
			"order_id", orderID.String(), "error", err)
		return record
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to record failed attempt",
			"order_id", orderID.String(), "error", err)
	}

	return record
}

// failureDetails maps a rejection to the reason string recorded on the log
// and decides whether the chosen partner is referenced on the record. The
// partner is referenced on every failure where one had been identified.
func failureDetails(err error, partnerID kernel.UUID) (string, *kernel.UUID) {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound) && notFound.ParamName == "order":
		return ReasonOrderNotFound, nil
	case errors.As(err, &notFound) && notFound.ParamName == "partner":
		return ReasonPartnerNotFound, nil
	case errors.Is(err, errs.ErrConcurrentModification):
		return ReasonConcurrentModification, &partnerID
	case errors.Is(err, errs.ErrInvalidState):
		var invalid *errs.InvalidStateError
		if errors.As(err, &invalid) {
			return invalid.Message, &partnerID
		}
		return err.Error(), &partnerID
	default:
		return err.Error(), &partnerID
	}
}
