// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/textwriter/internal/logger"
)

// Handler receives an event. It returns true if the event was consumed,
// which stops delivery to later handlers.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler // Map event types to a list of handlers
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for eventType. Handlers run in subscription order.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Event Manager: Handler subscribed to %v", eventType) // Debug log
}

// Dispatch delivers an event synchronously to the handlers of its type.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	e := Event{Type: eventType, Data: data}

	m.mu.RLock() // Read lock only while copying the handler list
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock() // Handlers run unlocked so they may Subscribe

	if len(handlers) == 0 {
		return
	}
	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))

	for _, handler := range handlers {
		if handler(e) {
			break // Consumed, stop propagation
		}
	}
}
