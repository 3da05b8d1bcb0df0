package commands

import (
	"context"
	"fmt"
	"math/rand/v2"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in pending status, generating an order number when the
// request does not carry one.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, "", "Jordan Lee", "+15550002",
//	    "12 Elm Street", "Downtown", 42.50, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and eligible for partner assignment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Generates an order number when absent and creates the order in pending
// status. Uses a transaction to ensure the order is persisted or rolled back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderNumber := cmd.OrderNumber()
	if orderNumber == "" {
		orderNumber = generateOrderNumber()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerAddress(),
		cmd.Area(),
		cmd.TotalAmount(),
		cmd.ScheduledFor(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// generateOrderNumber produces a human-readable order number of the form
// ORD-nnnnnn. Uniqueness is enforced by the order number column constraint.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", rand.IntN(1_000_000))
}
