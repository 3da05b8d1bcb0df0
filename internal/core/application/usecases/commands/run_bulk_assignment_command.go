package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRunBulkAssignmentCommandIsNotConstructed = errors.New(
	"RunBulkAssignmentCommand must be created via NewRunBulkAssignmentCommand constructor",
)

// RunBulkAssignmentCommand triggers the bulk assignment run over all pending
// orders. This is a parameterless command: the run derives its work queue and
// candidate pool from storage.
//
// Example:
//
//	cmd := NewRunBulkAssignmentCommand()
//	handler := NewRunBulkAssignmentCommandHandler(uowFactory, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("bulk run aborted: %v", err)
//	}
//	log.Printf("assigned %d of %d orders", result.SuccessCount, len(result.Assignments))
type RunBulkAssignmentCommand struct {
	guard guard.ConstructorGuard
}

// NewRunBulkAssignmentCommand creates a new command to trigger the bulk run.
func NewRunBulkAssignmentCommand() RunBulkAssignmentCommand {
	return RunBulkAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunBulkAssignmentCommandIsNotConstructed if validation fails.
func (c *RunBulkAssignmentCommand) Validate() error {
	return c.guard.Validate(
		ErrRunBulkAssignmentCommandIsNotConstructed,
	)
}
