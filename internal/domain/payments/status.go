package payments

// Status values a payment record moves through. A record starts as pending
// and only ever moves forward; terminal states are never overwritten by the
// provider path. Completed is the manual override terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCompleted Status = "completed"
)

// IsTerminal reports whether no further provider-driven transition applies.
func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed || s == StatusCompleted
}

// CanTransition reports whether a record in state from may move to state to.
// Allowed: pending→succeeded, pending→failed, and any state except completed
// →completed (administrative override). Re-applying the current state is not
// a transition.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	switch to {
	case StatusSucceeded, StatusFailed:
		return from == StatusPending
	case StatusCompleted:
		return from == StatusPending || from == StatusSucceeded || from == StatusFailed
	}
	return false
}
