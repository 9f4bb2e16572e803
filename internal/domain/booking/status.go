package booking

import "github.com/royalrinse/carwash-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
)

// InitialStatus is the status every booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition Table
// ===============================

var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionComplete: StatusCompleted,
	},
}

// ParseAction maps an action token from the admin surface to an Action.
// Unknown tokens are reported, never applied.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionApprove, ActionReject, ActionComplete:
		return Action(raw), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeUnknownAction)
}

// NextStatus resolves the status an action leads to from the current one.
// Pairs outside the transition table are rejected and leave the booking as is.
func NextStatus(current Status, action Action) (Status, error) {
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	return current, httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
