package workspace

import (
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier creates new LogNotifier.
func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs n at info level for successes and warn level for errors.
func (n *LogNotifier) Notify(notification model.Notification) {
	args := []any{"title", notification.Title, "description", notification.Description}
	if notification.Level == model.NotificationError {
		n.logger.Warn("Notification", args...)
		return
	}
	n.logger.Info("Notification", args...)
}
