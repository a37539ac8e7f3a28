package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/events"
	"github.com/spec-kit/visitor-service/internal/service"
)

// StartNotificationWorker subscribes the notification handlers to dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger, recorder service.EventRecorder) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	notifications := service.NewNotificationService(dispatcher, logger, recorder)
	notifications.RegisterHandlers()
	return notifications
}
