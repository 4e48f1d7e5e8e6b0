package route

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery route. A route is Completed once
// every stop is delivered.
type Status int

const (
	Unknown Status = iota
	Planned
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Planned:   "PLANNED",
		Completed: "COMPLETED",
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

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
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

// StopStatus is the delivery state of a single stop.
type StopStatus int

const (
	StopStatusUnknown StopStatus = iota
	StopStatusPending
	StopStatusDelivered
)

func getStopStatusStrings() map[StopStatus]string {
	return map[StopStatus]string{
		StopStatusUnknown:   "UNKNOWN",
		StopStatusPending:   "PENDING",
		StopStatusDelivered: "DELIVERED",
	}
}

// ParseStopStatus converts a persisted stop status name.
func ParseStopStatus(s string) (StopStatus, error) {
	for status, name := range getStopStatusStrings() {
		if status != StopStatusUnknown && name == s {
			return status, nil
		}
	}
	return StopStatusUnknown, errs.NewValueIsInvalidErrorWithCause("stop status is invalid",
		fmt.Errorf("%q is not a valid stop status", s))
}

func (s StopStatus) Validate() error {
	if s <= StopStatusUnknown || s > StopStatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("stop status is invalid", fmt.Errorf("%d is not a valid stop status", s))
	}
	return nil
}

func (s StopStatus) String() string {
	if str, ok := getStopStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
