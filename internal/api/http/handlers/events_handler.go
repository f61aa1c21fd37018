package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/events"
)

const defaultHeartbeat = 25 * time.Second

// EventsHandler streams change events to browsers as server-sent events.
type EventsHandler struct {
	ctx        context.Context
	dispatcher events.Dispatcher
	heartbeat  time.Duration
	buffer     int
	logger     *zap.Logger
}

// NewEventsHandler constructs handler. Streams end when ctx is cancelled.
func NewEventsHandler(ctx context.Context, dispatcher events.Dispatcher, heartbeat time.Duration, logger *zap.Logger) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventsHandler{ctx: ctx, dispatcher: dispatcher, heartbeat: heartbeat, buffer: 16, logger: logger}
}

// Stream handles GET /events.
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	ch := make(chan events.Event, h.buffer)
	forward := func(_ context.Context, event events.Event) error {
		select {
		case ch <- event:
		default:
			h.logger.Debug("sse client too slow, event dropped", zap.String("event_id", event.ID))
		}
		return nil
	}

	unsubscribes := make([]func(), 0, len(events.AllEventTypes))
	for _, t := range events.AllEventTypes {
		unsubscribes = append(unsubscribes, h.dispatcher.Subscribe(t, forward))
	}

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			for _, unsubscribe := range unsubscribes {
				unsubscribe()
			}
		}()

		if _, err := io.WriteString(w, ": connected\n\n"); err != nil {
			return
		}
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(h.heartbeat)
		defer ticker.Stop()

		for {
			var err error
			select {
			case <-h.ctx.Done():
				return
			case event := <-ch:
				err = WriteEvent(w, event)
			case <-ticker.C:
				_, err = io.WriteString(w, ": ping\n\n")
			}
			if err == nil {
				err = w.Flush()
			}
			if err != nil {
				h.logger.Debug("sse client disconnected", zap.Error(err))
				return
			}
		}
	}))
	return nil
}

// WriteEvent writes event in text/event-stream framing.
func WriteEvent(w io.Writer, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
	return err
}
