package picksheet

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a pick sheet.
//
//	Pending ──┬──> Completed
//	          └──> Abandoned (sheet cancelled, or every item abandoned by order cancellations)
type Status int

const (
	Unknown Status = iota
	Pending
	Completed
	Abandoned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Completed: "COMPLETED",
		Abandoned: "ABANDONED",
	}
}

// ParseStatus converts a persisted status name.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is defined.
func (s Status) Validate() error {
	if s <= Unknown || s > Abandoned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
