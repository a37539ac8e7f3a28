package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/visitor-service/internal/events"
)

// EventRecorder counts processed domain events.
type EventRecorder interface {
	RecordEvent(eventType string)
}

// NotificationService reacts to visitor lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	recorder   EventRecorder
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, recorder EventRecorder) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		recorder:   recorder,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventVisitorCreated, n.handleVisitorCreated)
	n.dispatcher.Subscribe(events.EventVisitorCheckInChanged, n.handleCheckInChanged)
	n.dispatcher.Subscribe(events.EventVisitorInvited, n.handleVisitorInvited)
}

func (n *NotificationService) handleVisitorCreated(_ context.Context, event events.Event) error {
	n.logger.Info("VisitorCreated", zap.String("visitor_id", event.VisitorID), zap.Any("payload", event.Payload))
	n.record(event)
	return nil
}

func (n *NotificationService) handleCheckInChanged(_ context.Context, event events.Event) error {
	n.logger.Info("VisitorCheckInChanged", zap.String("visitor_id", event.VisitorID), zap.Any("payload", event.Payload))
	n.record(event)
	return nil
}

func (n *NotificationService) handleVisitorInvited(_ context.Context, event events.Event) error {
	fields := []zap.Field{zap.Any("payload", event.Payload)}
	if event.StaffID != nil {
		fields = append(fields, zap.String("staff_id", *event.StaffID))
	}
	n.logger.Info("VisitorInvited", fields...)
	n.record(event)
	return nil
}

func (n *NotificationService) record(event events.Event) {
	if n.recorder != nil {
		n.recorder.RecordEvent(string(event.Type))
	}
}
