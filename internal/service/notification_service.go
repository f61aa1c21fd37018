package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/events"
)

// ChangeFeed forwards events to an external channel without blocking the publisher.
type ChangeFeed interface {
	Enqueue(event events.Event)
}

// NotificationService logs change events and forwards them to the change feed.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	feed       ChangeFeed
}

// NewNotificationService creates the service. feed may be nil.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, feed ChangeFeed) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		feed:       feed,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEmployeesChanged, n.handleEmployeesChanged)
	n.dispatcher.Subscribe(events.EventLanguageChanged, n.handleLanguageChanged)
}

func (n *NotificationService) handleEmployeesChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("EmployeesChanged", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.forward(event)
	return nil
}

func (n *NotificationService) handleLanguageChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("LanguageChanged", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.forward(event)
	return nil
}

func (n *NotificationService) forward(event events.Event) {
	if n.feed == nil {
		return
	}
	n.logger.Debug("forwardToChangeFeed",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
	n.feed.Enqueue(event)
}
