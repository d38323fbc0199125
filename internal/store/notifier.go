package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(ctx context.Context, notification models.Notification)

func (f NotifierFunc) Notify(ctx context.Context, notification models.Notification) {
	f(ctx, notification)
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes every notification to the
// log. The headless host uses it in place of a message box.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, notification models.Notification) {
	event := n.logger.Info()
	if notification.Kind == models.NotificationError {
		event = n.logger.Error()
	}

	event.Str("func", "logNotifier.Notify").
		Str("title", notification.Title).
		Msg(notification.Message)
}
