package events

import (
	"fmt"
	"sort"
	"sync"
)

// EventListener processes events. Lower priorities run first.
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Publisher is the emitting half of the bus
type Publisher interface {
	Emit(event Event) error
}

// Bus delivers events to the listeners subscribed to their type
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe registers listener for eventType. It is placed after every
// listener with the same or lower priority.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[eventType]
	at := sort.Search(len(current), func(i int) bool {
		return current[i].Priority() > listener.Priority()
	})

	next := make([]EventListener, 0, len(current)+1)
	next = append(next, current[:at]...)
	next = append(next, listener)
	next = append(next, current[at:]...)
	b.listeners[eventType] = next
}

// SubscribeAll registers listener for each of eventTypes
func (b *Bus) SubscribeAll(eventTypes []EventType, listener EventListener) {
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe drops every listener with listenerID from eventType
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := make([]EventListener, 0, len(b.listeners[eventType]))
	for _, l := range b.listeners[eventType] {
		if l.ID() != listenerID {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(b.listeners, eventType)
		return
	}
	b.listeners[eventType] = kept
}

// Emit runs the listeners for the event's type in priority order. Delivery
// stops once a listener cancels the event or returns an error.
func (b *Bus) Emit(event Event) error {
	// Subscribe and Unsubscribe replace the slice, so it is safe to read unlocked
	b.mu.RLock()
	listeners := b.listeners[event.GetType()]
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			return nil
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	b.listeners = make(map[EventType][]EventListener)
	b.mu.Unlock()
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	Name     string
	Order    int
	Callback func(event Event) error
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.Callback(event) }
func (l *ListenerFunc) Priority() int                 { return l.Order }
func (l *ListenerFunc) ID() string                    { return l.Name }
