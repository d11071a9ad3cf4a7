package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Transitions are
// defined in one table (see transitionTable) and applied through Apply,
// so the full state machine is visible in a single place:
//
//	Pending ──> PaymentApproved ──> InProduction ──> Ready ──> Completed
//	   │               │                  │            │
//	   └───────────────┴──────────────────┴────────────┴──> Cancelled
//
// Cancelled is reachable from every status except Completed, including
// Cancelled itself (re-cancelling is allowed). Completed and Cancelled
// are terminal for every other action.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the only status in which the item
	// collection may be modified.
	Pending

	// PaymentApproved indicates the payment system confirmed the charge.
	PaymentApproved

	// InProduction indicates the kitchen started preparing the order.
	InProduction

	// Ready indicates the order is prepared and awaiting pickup/delivery.
	Ready

	// Completed indicates the order was delivered. Terminal.
	Completed

	// Cancelled indicates the order was cancelled or its payment rejected.
	Cancelled
)

// Action identifies an operation guarded by the status machine.
type Action string

const (
	ActionAddItem         Action = "addItem"
	ActionRemoveItem      Action = "removeItem"
	ActionApprovePayment  Action = "approvePayment"
	ActionStartProduction Action = "startProduction"
	ActionMarkReady       Action = "markReady"
	ActionComplete        Action = "complete"
	ActionCancel          Action = "cancel"
)

// transition describes the statuses an action is allowed from and the
// status it results in.
type transition struct {
	from []Status
	to   Status
}

// getTransitionTable returns the complete transition table of the order
// lifecycle. Every guarded action appears exactly once.
func getTransitionTable() map[Action]transition {
	return map[Action]transition{
		ActionAddItem:         {from: []Status{Pending}, to: Pending},
		ActionRemoveItem:      {from: []Status{Pending}, to: Pending},
		ActionApprovePayment:  {from: []Status{Pending}, to: PaymentApproved},
		ActionStartProduction: {from: []Status{PaymentApproved}, to: InProduction},
		ActionMarkReady:       {from: []Status{InProduction}, to: Ready},
		ActionComplete:        {from: []Status{Ready}, to: Completed},
		ActionCancel:          {from: []Status{Pending, PaymentApproved, InProduction, Ready, Cancelled}, to: Cancelled},
	}
}

// Apply runs the guard for action against the current status and returns
// the resulting status. Returns an InvalidTransitionError carrying the
// current status and the attempted action when the guard fails.
func (s Status) Apply(action Action) (Status, error) {
	t, ok := getTransitionTable()[action]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), string(action))
	}

	for _, from := range t.from {
		if s == from {
			return t.to, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), string(action))
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		PaymentApproved: "PaymentApproved",
		InProduction:    "InProduction",
		Ready:           "Ready",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		PaymentApproved: "PaymentApproved",
		InProduction:    "InProduction",
		Ready:           "Ready",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle
// states. Unknown (0) and any other values are invalid. Used to vet
// statuses coming from external sources such as the database or API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name case-insensitively.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
