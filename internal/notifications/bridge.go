// Package notifications abstracts the host notification facility behind a
// small capability interface. Implementations vary (OS notifier, browser
// push, console fallback) but all satisfy the same three-method contract.
package notifications

//go:generate mockgen -destination=mock/mock_bridge.go -package=notificationsmock github.com/statmaxer/statmaxer/internal/notifications Bridge

import "context"

// Action is a user response delivered back from a presented notification
type Action string

// Notification actions
const (
	ActionComplete Action = "complete"
	ActionSnooze   Action = "snooze"
)

// Permission is the host's notification-permission state
type Permission string

// Permission states
const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Urgency controls how insistently the host presents a notification
type Urgency string

// Urgency levels. Critical maps to the host's sticky/require-interaction
// presentation and is used for hardcore alarms.
const (
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Notification is a presentation request handed to the bridge
type Notification struct {
	Title   string
	Body    string
	Tag     string
	Actions []Action
	Urgency Urgency
}

// ActionEvent is a user action flowing back into the engine. The host may
// deliver these after a relaunch; handlers must work against persisted
// state only.
type ActionEvent struct {
	HabitID string
	Action  Action
}

// Bridge is the host notification facility
type Bridge interface {
	// RequestPermission asks the host for the notification grant. A
	// denied grant degrades presentation, never scheduling.
	RequestPermission(ctx context.Context) (Permission, error)

	// Present shows a notification. Best effort; failures are reported
	// but the caller's scheduling state is unaffected.
	Present(ctx context.Context, n *Notification) error

	// CancelAllPending withdraws any presentation the host is still
	// holding on the engine's behalf.
	CancelAllPending(ctx context.Context) error
}
