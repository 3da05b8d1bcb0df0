package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// RunBulkAssignmentResult reports the outcome of one bulk run: the assignment
// record of every attempted order plus the number of successes.
type RunBulkAssignmentResult struct {
	Assignments  []*assignment.Assignment
	SuccessCount int
}

// RunBulkAssignmentCommandHandler executes the bulk assignment run.
//
// The run takes one snapshot of pending orders and available partners, then
// works through the orders sequentially against an in-memory working set of
// partners. Load bookkeeping happens on the working set, so a partner filling
// up mid-run stops receiving orders without re-reading storage. Each order is
// persisted in its own transaction with conditional updates; an order whose
// stored state changed under the run fails that attempt with a concurrent
// modification record instead of aborting the batch.
//
// Example:
//
//	handler := NewRunBulkAssignmentCommandHandler(uowFactory, logger)
//	result, err := handler.Handle(ctx, NewRunBulkAssignmentCommand())
//	if err != nil {
//	    return fmt.Errorf("bulk run failed: %w", err)
//	}
//	for _, record := range result.Assignments {
//	    if !record.IsSuccess() {
//	        log.Printf("order %s: %s", record.OrderID(), record.Reason())
//	    }
//	}
type RunBulkAssignmentCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.PartnerMatcher
	logger     *slog.Logger
}

// NewRunBulkAssignmentCommandHandler creates a handler for bulk assignment runs.
// Requires a UoWFactory for per-order transactions and snapshot reads.
func NewRunBulkAssignmentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RunBulkAssignmentCommandHandler {
	return RunBulkAssignmentCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewPartnerMatcher(),
		logger:     logger.With("component", "bulk_assignment"),
	}
}

// Handle processes the bulk assignment command.
// Returns the full list of attempt records in order-queue order and the
// success count. Only snapshot-read failures abort the run; per-order
// failures are recorded and the run continues.
func (h RunBulkAssignmentCommandHandler) Handle(
	ctx context.Context,
	command RunBulkAssignmentCommand,
) (RunBulkAssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return RunBulkAssignmentResult{}, err
	}

	pending, workingSet, err := h.loadSnapshot(ctx)
	if err != nil {
		return RunBulkAssignmentResult{}, err
	}

	result := RunBulkAssignmentResult{
		Assignments: make([]*assignment.Assignment, 0, len(pending)),
	}

	for _, aggregate := range pending {
		record := h.attempt(ctx, aggregate, workingSet)
		if record == nil {
			continue
		}

		result.Assignments = append(result.Assignments, record)
		if record.IsSuccess() {
			result.SuccessCount++
		}
	}

	return result, nil
}

// loadSnapshot reads the pending order queue and the partner working set in
// one read transaction. Both keep their retrieval order; the matching rules
// depend on it for deterministic tie-breaking.
func (h RunBulkAssignmentCommandHandler) loadSnapshot(
	ctx context.Context,
) ([]*order.Order, []*partner.Partner, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, nil, err
	}

	active, err := uow.PartnerRepository().GetAllActive(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	workingSet := make([]*partner.Partner, 0, len(active))
	for _, p := range active {
		if p.CurrentLoad() < partner.MaxLoad {
			workingSet = append(workingSet, p)
		}
	}

	return pending, workingSet, nil
}

// attempt matches and persists one order, returning its attempt record.
func (h RunBulkAssignmentCommandHandler) attempt(
	ctx context.Context,
	aggregate *order.Order,
	workingSet []*partner.Partner,
) *assignment.Assignment {
	selected, err := h.matcher.Match(aggregate, workingSet)
	if errors.Is(err, services.ErrNoPartnerAvailable) {
		return h.appendFailure(ctx, aggregate, nil, ReasonNoPartnersAvailable)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "matching failed",
			"order_id", aggregate.ID().String(), "error", err)
		return h.appendFailure(ctx, aggregate, nil, err.Error())
	}

	record, err := assignment.NewSuccessAssignment(aggregate.ID(), selected.ID())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build success record",
			"order_id", aggregate.ID().String(), "error", err)
		return nil
	}

	if err = h.persistAssignment(ctx, aggregate, selected, record); err != nil {
		// Undo the in-memory increment so the working set mirrors storage.
		_ = selected.DecrementLoad()

		partnerID := selected.ID()
		if errors.Is(err, errs.ErrConcurrentModification) {
			return h.appendFailure(ctx, aggregate, &partnerID, ReasonConcurrentModification)
		}

		h.logger.WarnContext(ctx, "assignment persistence failed",
			"order_id", aggregate.ID().String(), "error", err)
		return h.appendFailure(ctx, aggregate, &partnerID, err.Error())
	}

	return record
}

// persistAssignment writes the matched order, the partner load, and the
// success record in one transaction. Order and partner writes are conditional
// on the stored state the snapshot was taken from; zero affected rows
// surfaces as errs.ErrConcurrentModification and rolls the attempt back.
func (h RunBulkAssignmentCommandHandler) persistAssignment(
	ctx context.Context,
	aggregate *order.Order,
	selected *partner.Partner,
	record *assignment.Assignment,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateIfPending(ctx, aggregate); err != nil {
		return err
	}

	// The matcher already incremented the in-memory load.
	expectedLoad := selected.CurrentLoad() - 1
	if err := uow.PartnerRepository().UpdateLoad(ctx, selected, expectedLoad); err != nil {
		return err
	}

	if err := uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// appendFailure records a failed attempt. The order keeps its pending state.
func (h RunBulkAssignmentCommandHandler) appendFailure(
	ctx context.Context,
	aggregate *order.Order,
	partnerID *kernel.UUID,
	reason string,
) *assignment.Assignment {
	record, err := assignment.NewFailedAssignment(aggregate.ID(), partnerID, reason)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build failure record",
			"order_id", aggregate.ID().String(), "error", err)
		return nil
	}

	if err = h.appendRecord(ctx, record); err != nil {
		h.logger.WarnContext(ctx, "failed to record failed attempt",
			"order_id", aggregate.ID().String(), "error", err)
	}

	return record
}

// appendRecord writes one assignment record in its own short transaction.
func (h RunBulkAssignmentCommandHandler) appendRecord(ctx context.Context, record *assignment.Assignment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
