package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeesChanged EventType = "employees_changed"
	EventLanguageChanged  EventType = "language_changed"
)

// AllEventTypes lists every type the portal publishes.
var AllEventTypes = []EventType{EventEmployeesChanged, EventLanguageChanged}

// Event represents a change observed in the store or the localization catalog.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a payload with a fresh id and the current time.
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// EmployeesChangedPayload payload.
type EmployeesChangedPayload struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// LanguageChangedPayload payload.
type LanguageChangedPayload struct {
	Language string `json:"language"`
}
