package notifications

import (
	"context"
	"log/slog"
)

// Console is a Bridge that writes notifications to the structured log.
// Used by the headless daemon and wherever no host notifier is wired.
type Console struct {
	logger *slog.Logger
}

// NewConsole creates a console bridge. A nil logger uses slog.Default.
func NewConsole(logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{logger: logger}
}

// RequestPermission always grants; there is nothing to ask for
func (c *Console) RequestPermission(_ context.Context) (Permission, error) {
	return PermissionGranted, nil
}

// Present logs the notification
func (c *Console) Present(_ context.Context, n *Notification) error {
	c.logger.Info("notification",
		"title", n.Title,
		"body", n.Body,
		"tag", n.Tag,
		"urgency", string(n.Urgency),
	)
	return nil
}

// CancelAllPending is a no-op; console notifications are not held
func (c *Console) CancelAllPending(_ context.Context) error {
	return nil
}

// Compile-time check that Console implements Bridge
var _ Bridge = (*Console)(nil)
