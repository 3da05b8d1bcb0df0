package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the outcome of one assignment attempt.
// Unlike order and partner statuses this is not a state machine: an
// assignment record is written once with its final status and never changes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Success indicates the order was assigned to a partner.
	Success

	// Failed indicates the attempt did not produce an assignment.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Success: "success",
		Failed:  "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Success: "success",
		Failed:  "failed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("success"/"failed").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-level status name into a Status value.
// Returns an error for anything other than "success" or "failed".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
