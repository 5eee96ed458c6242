package alarm

import (
	"github.com/statmaxer/statmaxer/internal/notifications"
)

// ScheduleAllInput defines the input for the full rescheduling pass
type ScheduleAllInput struct{}

// ScheduleAllOutput defines the output for the full rescheduling pass
type ScheduleAllOutput struct {
	// Armed is the number of habits now holding a pending wake-up
	Armed int
	// Failed counts habits whose alarm could not be scheduled; failures
	// are isolated and do not abort the pass
	Failed int
}

// RescheduleInput defines the input for re-evaluating a single habit
type RescheduleInput struct {
	HabitID string
}

// RescheduleOutput defines the output for re-evaluating a single habit
type RescheduleOutput struct {
	// Armed reports whether the habit now holds a pending wake-up
	Armed bool
}

// CancelAllInput defines the input for cancelling every pending wake-up
type CancelAllInput struct{}

// CancelAllOutput defines the output for cancelling every pending wake-up
type CancelAllOutput struct {
	Cancelled int
}

// HandleActionInput defines the input for a user notification action
type HandleActionInput struct {
	HabitID string
	Action  notifications.Action
}

// HandleActionOutput defines the output for a user notification action
type HandleActionOutput struct {
	// Found is false when the habit no longer exists; the action is a no-op
	Found bool
	// Checked is the new completion state after a complete action
	Checked bool
	// Denied is true when a snooze was refused by hardcore mode
	Denied bool
	// Penalty is the ledger total after a snooze action
	Penalty int
}

// RequestPermissionInput defines the input for the permission request
type RequestPermissionInput struct{}

// RequestPermissionOutput defines the output for the permission request
type RequestPermissionOutput struct {
	Granted bool
}
