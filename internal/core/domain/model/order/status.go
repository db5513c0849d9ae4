package order

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is wrapped by every error caused by a status value outside
// the three known ones.
var ErrInvalidStatus = errors.New("invalid order status, must be one of: encargado, elaborando, listo")

// Status represents where an order is in the kitchen workflow.
//
// The usual progression is:
//
//	Placed ──> InPreparation ──> Ready
//
// but staff may set any status at any time, so ChangeStatus does not enforce
// the arrow above.
type Status int

const (
	// Unknown is the zero value and never valid. It catches uninitialised statuses.
	Unknown Status = iota

	// Placed ("encargado") is the status of a freshly created order.
	Placed

	// InPreparation ("elaborando") means the bakery is making the order.
	InPreparation

	// Ready ("listo") means the order can be picked up or delivered.
	Ready
)

// getStatusStrings returns the persisted literal of every valid status.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no literal
	return map[Status]string{
		Placed:        "encargado",
		InPreparation: "elaborando",
		Ready:         "listo",
	}
}

// Statuses lists the valid statuses in workflow order.
func Statuses() []Status {
	return []Status{Placed, InPreparation, Ready}
}

// ParseStatus maps a literal ("encargado", "elaborando", "listo") to its Status.
// The match is exact; any other input returns an error wrapping ErrInvalidStatus.
func ParseStatus(raw string) (Status, error) {
	for status, literal := range getStatusStrings() {
		if literal == raw {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: got %q", ErrInvalidStatus, raw)
}

// Validate returns an error wrapping ErrInvalidStatus for Unknown and any
// value outside the declared constants.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatus, int(s))
	}
	return nil
}

// String returns the persisted literal, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
