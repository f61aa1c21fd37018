package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/events"
)

// Publisher delivers one message to an external channel.
type Publisher interface {
	Publish(ctx context.Context, message any) error
}

// ChangeFeedWorker drains change events into a Publisher off the request path.
type ChangeFeedWorker struct {
	publisher Publisher
	queue     chan events.Event
	timeout   time.Duration
	logger    *zap.Logger
}

// NewChangeFeedWorker buffers up to size events. Events arriving while the buffer is full are dropped.
func NewChangeFeedWorker(publisher Publisher, size int, logger *zap.Logger) *ChangeFeedWorker {
	if size <= 0 {
		size = 64
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeFeedWorker{
		publisher: publisher,
		queue:     make(chan events.Event, size),
		timeout:   5 * time.Second,
		logger:    logger,
	}
}

// Enqueue implements service.ChangeFeed.
func (w *ChangeFeedWorker) Enqueue(event events.Event) {
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("change feed queue full, dropping event",
			zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))
	}
}

// Run publishes queued events until ctx is cancelled.
func (w *ChangeFeedWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-w.queue:
			w.publish(ctx, event)
		}
	}
}

func (w *ChangeFeedWorker) publish(ctx context.Context, event events.Event) {
	pubCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.publisher.Publish(pubCtx, event); err != nil {
		w.logger.Warn("change feed publish failed",
			zap.String("event_id", event.ID), zap.Error(err))
	}
}
