package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	// Subscribe registers handler and returns a function that removes it.
	Subscribe(eventType EventType, handler EventHandler) func()
}

type registration struct {
	id      uint64
	handler EventHandler
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]registration
	nextID    uint64
	logger    *zap.Logger
}

// NewInMemoryDispatcher creates a dispatcher instance. A nil logger discards handler errors.
func NewInMemoryDispatcher(logger *zap.Logger) Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inMemoryDispatcher{
		listeners: make(map[EventType][]registration),
		logger:    logger,
	}
}

// Publish synchronously invokes handlers for the given event in subscription order.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	regs := append([]registration{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, reg := range regs {
		if err := reg.handler(ctx, event); err != nil {
			// continue processing other handlers despite errors
			d.logger.Warn("event handler failed",
				zap.String("event_type", string(event.Type)),
				zap.String("event_id", event.ID),
				zap.Error(err))
		}
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], registration{id: id, handler: handler})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(eventType, id) })
	}
}

func (d *inMemoryDispatcher) remove(eventType EventType, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs := d.listeners[eventType]
	for i, reg := range regs {
		if reg.id == id {
			d.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}
