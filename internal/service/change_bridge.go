package service

import (
	"context"

	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/localization"
	"github.com/spec-kit/employee-portal/internal/store"
)

// StoreSubscriber is satisfied by *store.Store.
type StoreSubscriber interface {
	Subscribe(l store.Listener) func()
}

// LanguageSubscriber is satisfied by *localization.Catalog.
type LanguageSubscriber interface {
	Subscribe(l localization.Listener) func()
}

// BridgeStore publishes an employees_changed event after every store mutation.
// The call made by Subscribe on registration is skipped.
func BridgeStore(ctx context.Context, s StoreSubscriber, dispatcher events.Dispatcher) func() {
	initial := true
	return s.Subscribe(func(state store.State) {
		if initial {
			initial = false
			return
		}
		ids := make([]string, 0, len(state.Employees))
		for _, e := range state.Employees {
			ids = append(ids, e.ID)
		}
		_ = dispatcher.Publish(ctx, events.NewEvent(events.EventEmployeesChanged, events.EmployeesChangedPayload{
			Count: len(state.Employees),
			IDs:   ids,
		}))
	})
}

// BridgeLanguage publishes a language_changed event after every language switch.
func BridgeLanguage(ctx context.Context, c LanguageSubscriber, dispatcher events.Dispatcher) func() {
	return c.Subscribe(func(code string) {
		_ = dispatcher.Publish(ctx, events.NewEvent(events.EventLanguageChanged, events.LanguageChangedPayload{Language: code}))
	})
}
